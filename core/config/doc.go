// Package config provides configuration management for pair-compare.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each setting as `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Database: optional SQL source for lookup tables
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Compare: duplicate lookup id policy and export naming
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
