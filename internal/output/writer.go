package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"

	"github.com/nephila016/emailcanon/internal/inspector"
)

// Writer interface for different output formats
type Writer interface {
	Write(result *inspector.Result) error
	Flush() error
	Close() error
}

// Format represents output format type
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatJSONL Format = "jsonl"
	FormatTXT   Format = "txt"
)

// DetectFormat detects output format from filename
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatTXT
	}
}

// NewWriter creates a writer for the given format and file
func NewWriter(filename string, format Format) (Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	switch format {
	case FormatJSON:
		return NewJSONWriter(file), nil
	case FormatCSV:
		return NewCSVWriter(file), nil
	case FormatJSONL:
		return NewJSONLWriter(file), nil
	default:
		return NewTXTWriter(file), nil
	}
}

// JSONWriter buffers results and writes them as one JSON array on Flush
type JSONWriter struct {
	file    *os.File
	results []*inspector.Result
	mu      sync.Mutex
}

func NewJSONWriter(file *os.File) *JSONWriter {
	return &JSONWriter{
		file:    file,
		results: make([]*inspector.Result, 0),
	}
}

func (w *JSONWriter) Write(result *inspector.Result) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.results = append(w.results, result)
	return nil
}

func (w *JSONWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := w.file.Truncate(0); err != nil {
		return err
	}

	encoder := json.NewEncoder(w.file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(w.results)
}

func (w *JSONWriter) Close() error {
	if err := w.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// JSONLWriter writes results as JSON Lines (one JSON per line)
type JSONLWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

func NewJSONLWriter(file *os.File) *JSONLWriter {
	return &JSONLWriter{
		file:    file,
		encoder: json.NewEncoder(file),
	}
}

func (w *JSONLWriter) Write(result *inspector.Result) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.encoder.Encode(result)
}

func (w *JSONLWriter) Flush() error {
	return w.file.Sync()
}

func (w *JSONLWriter) Close() error {
	return w.file.Close()
}

// CSVHeader lists the CSV columns in order
var CSVHeader = []string{
	"email",
	"normalized",
	"status",
	"reason",
	"local_part",
	"domain",
	"provider",
	"subdomain",
	"class",
	"role_account",
	"canonical",
	"canonical_provider",
	"canonical_supported",
	"suggestion",
	"checked_at",
	"registrable_domain",
}

// CSVWriter writes results as CSV
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
	header bool
}

func NewCSVWriter(file *os.File) *CSVWriter {
	return &CSVWriter{
		file:   file,
		writer: csv.NewWriter(file),
	}
}

func (w *CSVWriter) Write(result *inspector.Result) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.header {
		if err := w.writer.Write(CSVHeader); err != nil {
			return err
		}
		w.header = true
	}

	return w.writer.Write([]string{
		result.Email,
		result.Normalized,
		string(result.Status),
		result.Reason,
		result.LocalPart,
		result.Domain,
		result.Provider,
		result.Subdomain,
		string(result.Class),
		strconv.FormatBool(result.RoleAccount),
		result.Canonical,
		result.CanonicalProvider,
		strconv.FormatBool(result.CanonicalSupported),
		result.Suggestion,
		result.CheckedAt.Format("2006-01-02 15:04:05"),
		result.RegistrableDomain,
	})
}

func (w *CSVWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writer.Flush()
	return w.writer.Error()
}

func (w *CSVWriter) Close() error {
	flushErr := w.Flush()
	if err := w.file.Close(); err != nil {
		return err
	}
	return flushErr
}

// TXTWriter writes each distinct canonical address of a valid result once,
// one per line
type TXTWriter struct {
	file *os.File
	seen *strset.Set
	mu   sync.Mutex
}

func NewTXTWriter(file *os.File) *TXTWriter {
	return &TXTWriter{file: file, seen: strset.New()}
}

func (w *TXTWriter) Write(result *inspector.Result) error {
	if result.Status != inspector.StatusValid || result.Canonical == "" {
		return nil // Only write valid addresses
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.seen.Has(result.Canonical) {
		return nil
	}
	w.seen.Add(result.Canonical)

	_, err := fmt.Fprintf(w.file, "%s\n", result.Canonical)
	return err
}

func (w *TXTWriter) Flush() error {
	return w.file.Sync()
}

func (w *TXTWriter) Close() error {
	return w.file.Close()
}

// MultiWriter writes to multiple outputs
type MultiWriter struct {
	writers []Writer
}

func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

func (w *MultiWriter) Write(result *inspector.Result) error {
	for _, writer := range w.writers {
		if err := writer.Write(result); err != nil {
			return err
		}
	}
	return nil
}

func (w *MultiWriter) Flush() error {
	var result *multierror.Error
	for _, writer := range w.writers {
		if err := writer.Flush(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Close closes every writer even if some fail.
func (w *MultiWriter) Close() error {
	var result *multierror.Error
	for _, writer := range w.writers {
		if err := writer.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// OpenAll creates one writer per file, picking each format from its
// extension. The name "-" streams summary lines to stdout. Already opened
// files are closed if a later one fails.
func OpenAll(filenames ...string) (*MultiWriter, error) {
	writers := make([]Writer, 0, len(filenames))
	for _, name := range filenames {
		if name == "-" {
			writers = append(writers, NewStreamWriter(os.Stdout))
			continue
		}
		writer, err := NewWriter(name, DetectFormat(name))
		if err != nil {
			NewMultiWriter(writers...).Close()
			return nil, err
		}
		writers = append(writers, writer)
	}
	return NewMultiWriter(writers...), nil
}

// WriteResultsToFile writes all results to a file
func WriteResultsToFile(filename string, results []*inspector.Result) error {
	format := DetectFormat(filename)
	writer, err := NewWriter(filename, format)
	if err != nil {
		return err
	}
	defer writer.Close()

	for _, result := range results {
		if err := writer.Write(result); err != nil {
			return err
		}
	}

	return writer.Flush()
}

// StreamWriter writes one summary line per result to an io.Writer
type StreamWriter struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{writer: w}
}

func (w *StreamWriter) Write(result *inspector.Result) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if result.Status == inspector.StatusValid {
		_, err = fmt.Fprintf(w.writer, "%s: %s %s -> %s\n", result.Email, result.Status, result.Class, result.Canonical)
	} else {
		_, err = fmt.Fprintf(w.writer, "%s: %s (%s)\n", result.Email, result.Status, result.Reason)
	}
	return err
}

func (w *StreamWriter) Flush() error {
	return nil
}

func (w *StreamWriter) Close() error {
	return nil
}
