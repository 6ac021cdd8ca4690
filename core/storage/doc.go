// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface. The comparison service
// uses it for two things: reading input tables that were uploaded to a bucket
// ahead of time, and archiving generated workbooks (pair lists and merged
// comparisons) when a caller asks for it.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider so handlers and services
// can be tested against core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	info, err := storage.Archive(ctx, client, cfg.Storage.Bucket, "exports/x.xlsx", storage.XLSXContentType, data)
package storage
