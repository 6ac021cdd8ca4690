package pairs

import (
	"bytes"
	"context"
	"fmt"

	"pair-compare/core/compare"
	"pair-compare/core/export"
	"pair-compare/core/storage"
	"pair-compare/core/table"

	"go.uber.org/zap"
)

// FileName is the download name of generated pairs workbooks.
const FileName = "pairs_table.xlsx"

// Service generates pairs workbooks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new pairs service. A nil client disables archiving.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Generated is the outcome of one pairs generation.
type Generated struct {
	Count    int
	Workbook []byte
	// Object is the archived object name, empty when not archived.
	Object string
}

// Generate builds every pair of the distinct ids in column and renders them as a workbook.
// An empty column guesses the id column from the headers.
func (s *Service) Generate(ctx context.Context, ids *table.Table, column string, archive bool) (*Generated, error) {
	if archive && s.client == nil {
		return nil, storage.ErrDisabled
	}

	pairs, err := compare.PairsFromTable(ids, column)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WritePairs(&buf, compare.PairsTable(pairs)); err != nil {
		return nil, fmt.Errorf("failed to write pairs workbook: %w", err)
	}

	out := &Generated{Count: len(pairs), Workbook: buf.Bytes()}
	s.logger.Info("Pairs generated", zap.Int("ids", ids.Len()), zap.Int("pairs", out.Count))

	if archive {
		out.Object = storage.ObjectName(s.prefix, "pairs", FileName)
		if _, err := storage.Archive(ctx, s.client, s.bucket, out.Object, storage.XLSXContentType, out.Workbook); err != nil {
			return nil, err
		}
		s.logger.Info("Pairs workbook archived", zap.String("object", out.Object))
	}
	return out, nil
}
