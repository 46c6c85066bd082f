package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const utf8BOM = "\uFEFF"

// ReadFile reads a table from path, choosing the decoder by extension.
func ReadFile(path string) (*Table, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".parquet"):
		return ReadParquet(path)
	case strings.HasSuffix(lower, ".csv"),
		strings.HasSuffix(lower, ".csv.gz"),
		strings.HasSuffix(lower, ".csv.zst"),
		strings.HasSuffix(lower, ".csv.lz4"),
		strings.HasSuffix(lower, ".csv.br"):
		return readCSVFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func readCSVFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r, closeFn, err := decompress(path, file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer closeFn()

	table, err := ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return table, nil
}

// decompress wraps r with the decoder matching the compression suffix of name.
// The returned close function releases decoder resources and never fails.
func decompress(name string, r io.Reader) (io.Reader, func(), error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}
		return gz, func() { _ = gz.Close() }, nil
	case strings.HasSuffix(lower, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		return dec, dec.Close, nil
	case strings.HasSuffix(lower, ".lz4"):
		return lz4.NewReader(r), func() {}, nil
	case strings.HasSuffix(lower, ".br"):
		return brotli.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

// ReadCSV reads CSV data with a mandatory header row.
//
// All rows must have as many fields as the header. A leading UTF-8 byte
// order mark is removed from the first header name.
func ReadCSV(r io.Reader) (*Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.ReuseRecord = false

	headers, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", ErrMalformedTable)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}

	table := &Table{Headers: headers, Rows: make([][]string, 0)}
	for {
		record, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
		}
		table.Rows = append(table.Rows, record)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
