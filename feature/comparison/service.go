package comparison

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"sync"

	"pair-compare/core/compare"
	"pair-compare/core/database"
	"pair-compare/core/export"
	"pair-compare/core/storage"
	"pair-compare/core/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FileName is the download name of merged comparison workbooks.
const FileName = "merged_comparison.xlsx"

// Service builds and exports comparisons.
type Service struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	cfg    compare.Config
	logger *zap.Logger
}

// NewService creates a new comparison service.
// A nil client disables storage sources and archiving, a nil db disables SQL lookup tables.
func NewService(client storage.Client, bucket string, db *gorm.DB, cfg compare.Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// Sources names where the pairs and lookup tables come from.
// An upload wins over a storage object. LookupTable reads the lookup from the database.
type Sources struct {
	Pairs        *multipart.FileHeader
	Lookup       *multipart.FileHeader
	PairsObject  string
	LookupObject string
	LookupTable  string
}

// Tables reads both tables concurrently. Unreadable or missing files give empty tables.
// Configuration problems, such as a storage object without storage, are errors.
func (s *Service) Tables(ctx context.Context, l *zap.Logger, src Sources) (*table.Table, *table.Table, error) {
	var (
		pairs, lookup       *table.Table
		pairsErr, lookupErr error
		wg                  sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		pairs, pairsErr = s.readTable(ctx, l, "pairs", src.Pairs, src.PairsObject)
	}()
	go func() {
		defer wg.Done()
		if src.LookupTable != "" && src.Lookup == nil {
			lookup, lookupErr = database.LoadTable(ctx, s.db, src.LookupTable)
			return
		}
		lookup, lookupErr = s.readTable(ctx, l, "lookup", src.Lookup, src.LookupObject)
	}()
	wg.Wait()

	if pairsErr != nil {
		return nil, nil, pairsErr
	}
	if lookupErr != nil {
		return nil, nil, lookupErr
	}
	return pairs, lookup, nil
}

func (s *Service) readTable(ctx context.Context, l *zap.Logger, role string, fh *multipart.FileHeader, object string) (*table.Table, error) {
	var (
		t   *table.Table
		err error
	)
	switch {
	case fh != nil:
		t, err = table.ReadUpload(fh)
	case object != "":
		if s.client == nil {
			return nil, storage.ErrDisabled
		}
		t, err = table.FromStorage(ctx, s.client, s.bucket, object)
	default:
		return table.Empty(role), nil
	}
	if err != nil {
		l.Warn("Unreadable table, treating as empty", zap.String("role", role), zap.Error(err))
		return table.Empty(role), nil
	}
	return t, nil
}

// ColumnsReport describes the columns of an uploaded table pair.
type ColumnsReport struct {
	PairColumns    []table.Column     `json:"pair_columns"`
	LookupColumns  []table.Column     `json:"lookup_columns"`
	NumericColumns []string           `json:"numeric_columns"`
	TextColumns    []string           `json:"text_columns"`
	Suggestion     compare.Suggestion `json:"suggestion"`
	DisplayOptions []string           `json:"display_options"`
}

// Columns lists the selectable columns and suggests roles for them.
func (s *Service) Columns(pairs, lookup *table.Table) ColumnsReport {
	suggestion := compare.SuggestRoles(pairs, lookup)
	report := ColumnsReport{
		PairColumns:    nonNil(pairs.Columns),
		LookupColumns:  nonNil(lookup.Columns),
		NumericColumns: lookup.ColumnsOfKind(table.KindNumeric),
		TextColumns:    lookup.ColumnsOfKind(table.KindText),
		Suggestion:     suggestion,
		DisplayOptions: compare.DisplayOptions(suggestion.Roles),
	}
	if report.NumericColumns == nil {
		report.NumericColumns = []string{}
	}
	if report.TextColumns == nil {
		report.TextColumns = []string{}
	}
	return report
}

func nonNil(cols []table.Column) []table.Column {
	if cols == nil {
		return []table.Column{}
	}
	return cols
}

// Build runs the comparison pipeline. A request without a duplicate policy uses the configured one.
func (s *Service) Build(l *zap.Logger, pairs, lookup *table.Table, req compare.Request) (*compare.Result, error) {
	if req.DuplicatePolicy == "" {
		req.DuplicatePolicy = s.cfg.DuplicatePolicy
	}

	result, err := compare.Build(pairs, lookup, req)
	if err != nil {
		return nil, err
	}

	if req.DuplicatePolicy != compare.DuplicateReject && req.Roles.LookupID != "" {
		if dups := compare.DuplicateIDs(lookup, req.Roles.LookupID); len(dups) > 0 {
			l.Warn("Duplicate lookup ids fan out", zap.Strings("duplicate_ids", dups))
		}
	}
	l.Info("Comparison built",
		zap.Int("pairs", pairs.Len()),
		zap.Int("lookup_rows", lookup.Len()),
		zap.Int("rows", len(result.Rows)),
		zap.Int("columns", len(result.Schema.Columns)),
	)
	return result, nil
}

// Exported is a rendered comparison workbook.
type Exported struct {
	Workbook []byte
	// Object is the archived object name, empty when not archived.
	Object string
}

// Export renders a result as a workbook, archiving it when asked.
func (s *Service) Export(ctx context.Context, l *zap.Logger, result *compare.Result, archive bool) (*Exported, error) {
	if archive && s.client == nil {
		return nil, storage.ErrDisabled
	}

	var buf bytes.Buffer
	if err := export.WriteMerged(&buf, result, s.cfg.SheetName); err != nil {
		return nil, fmt.Errorf("failed to write comparison workbook: %w", err)
	}
	out := &Exported{Workbook: buf.Bytes()}

	if archive {
		out.Object = storage.ObjectName(s.cfg.ExportPrefix, "comparisons", FileName)
		if _, err := storage.Archive(ctx, s.client, s.bucket, out.Object, storage.XLSXContentType, out.Workbook); err != nil {
			return nil, err
		}
		l.Info("Comparison workbook archived", zap.String("object", out.Object))
	}
	return out, nil
}
