// Package pairs exposes pair generation over HTTP.
//
// An uploaded id list is reduced to its distinct ids and every unordered pair
// is returned as the "Pairs" sheet of pairs_table.xlsx. Unreadable uploads
// give an empty workbook.
//
// # HTTP Endpoints
//
//   - POST /pairs/generate : multipart "file", optional form "column", ?store=true archives the workbook.
package pairs
