// Package database handles the optional SQL source for lookup tables.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections from
// the application's configuration, and a loader that reads a whole SQL table into
// the same in-memory table model the file readers produce.
//
// # Connect
//
// Connect establishes and pings the connection. Callers treat failures as
// non-fatal and simply run without the SQL source.
//
// # Loading Tables
//
// LoadTable verifies the table exists before selecting from it, and ScanRows turns
// any result set into a table with inferred column kinds.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	lookup, err := database.LoadTable(ctx, db, "entities")
package database
