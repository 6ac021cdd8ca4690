package table

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"pair-compare/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for file names without a .csv or .xlsx extension.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// Read parses r as CSV or XLSX depending on the extension of name.
func Read(name string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return ReadCSV(name, r)
	case ".xlsx", ".xlsm":
		return ReadXLSX(name, r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// ReadBytes is Read over an in-memory buffer.
func ReadBytes(name string, data []byte) (*Table, error) {
	return Read(name, bytes.NewReader(data))
}

// ReadFile reads a table from the local filesystem.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Read(filepath.Base(path), f)
}

// ReadUpload reads a table from a multipart file upload.
func ReadUpload(fh *multipart.FileHeader) (*Table, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()
	return Read(fh.Filename, f)
}

// Empty returns a table with no columns and no rows.
func Empty(name string) *Table {
	return &Table{Name: name}
}

// FromStorage reads a table stored as an object in the given bucket.
func FromStorage(ctx context.Context, client storage.Client, bucket, objectName string) (*Table, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectName, err)
	}
	return ReadBytes(filepath.Base(objectName), data)
}

// ReadCSV parses a CSV stream whose first record is the header.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", name, err)
	}
	if len(records) == 0 {
		return Empty(name), nil
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	return New(name, headers, records[1:]), nil
}

// ReadXLSX parses the first sheet of a workbook whose first row is the header.
func ReadXLSX(name string, r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", name, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Empty(name), nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Empty(name), nil
	}
	return New(name, rows[0], rows[1:]), nil
}
