// Package utils provides common utility functions for the pair-compare application.
// It includes helper functions for cell value conversion (numbers, strings, blanks)
// shared by the table readers, the comparison engine and the spreadsheet exporter.
package utils
