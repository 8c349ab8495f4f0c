// Package report writes the change log selected by --log-file.
//
// The log is append-only text, one record per rename plan:
//
//	<status>\t<original>\t<new>
//
// Paths are relative to the target directory. Fields holding tabs, newlines,
// other control characters, a leading double quote or invalid UTF-8 are
// written Go-quoted so every record stays on one line. Each run is framed
// by "#"-prefixed header and summary lines carrying the timestamp and mode.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/backmassage/unifile/internal/naming"
)

// Status is the outcome column of a record.
type Status string

const (
	StatusPlanned Status = "planned" // Dry run: the rename would happen.
	StatusRenamed Status = "renamed" // The rename was applied.
	StatusError   Status = "error"   // The rename was attempted and failed.
)

// ErrMalformedRecord is returned by ParseRecord for lines that are not records.
var ErrMalformedRecord = errors.New("malformed change-log record")

// Record is one parsed change-log line.
type Record struct {
	Status Status
	From   string
	To     string
}

// Header opens a run in the log.
type Header struct {
	Time   time.Time
	Mode   naming.Mode
	DryRun bool
	Root   string
}

// Summary closes a run in the log.
type Summary struct {
	Renamed   int
	Unchanged int
	Excluded  int
	Failed    int
}

// Log appends records to a writer without buffering. Writes are serialized.
type Log struct {
	mu sync.Mutex
	w  io.Writer
	f  *os.File
}

// Open appends to the file at path, creating it and its directory when
// needed. An empty path yields a Log that discards everything.
func Open(path string) (*Log, error) {
	if path == "" {
		return New(io.Discard), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Log{w: f, f: f}, nil
}

// New returns a Log writing to w.
func New(w io.Writer) *Log {
	return &Log{w: w}
}

// Begin writes the run header.
func (l *Log) Begin(h Header) error {
	return l.write(fmt.Sprintf("# unifile %s mode=%s dry-run=%t root=%s\n",
		h.Time.Format(time.RFC3339), h.Mode, h.DryRun, quoteField(h.Root)))
}

// Record writes one record.
func (l *Log) Record(status Status, from, to string) error {
	return l.write(string(status) + "\t" + quoteField(from) + "\t" + quoteField(to) + "\n")
}

// End writes the run summary.
func (l *Log) End(s Summary) error {
	return l.write(fmt.Sprintf("# summary renamed=%d unchanged=%d excluded=%d failed=%d\n",
		s.Renamed, s.Unchanged, s.Excluded, s.Failed))
}

// Close closes the underlying file if Open created one.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f != nil {
		err := l.f.Close()
		l.f = nil
		l.w = io.Discard
		return err
	}
	return nil
}

func (l *Log) write(s string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := io.WriteString(l.w, s)
	return err
}

// ParseRecord parses one record line (without the trailing newline).
// Comment lines return ErrMalformedRecord.
func ParseRecord(line string) (Record, error) {
	if strings.HasPrefix(line, "#") {
		return Record{}, ErrMalformedRecord
	}
	parts := strings.Split(line, "\t")
	if len(parts) != 3 {
		return Record{}, ErrMalformedRecord
	}
	status := Status(parts[0])
	switch status {
	case StatusPlanned, StatusRenamed, StatusError:
	default:
		return Record{}, fmt.Errorf("%w: unknown status %q", ErrMalformedRecord, parts[0])
	}
	from, err := unquoteField(parts[1])
	if err != nil {
		return Record{}, err
	}
	to, err := unquoteField(parts[2])
	if err != nil {
		return Record{}, err
	}
	return Record{Status: status, From: from, To: to}, nil
}

// quoteField Go-quotes s when it holds invalid UTF-8, a control character
// or a leading double quote. unquoteField is its inverse.
func quoteField(s string) string {
	if !utf8.ValidString(s) || strings.HasPrefix(s, `"`) ||
		strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return strconv.Quote(s)
	}
	return s
}

func unquoteField(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	u, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return u, nil
}
