// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the listening port, the API key that guards every route, and the upload
// size limit applied to multipart table uploads.
package server
