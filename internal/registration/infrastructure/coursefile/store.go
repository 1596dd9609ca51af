// Package coursefile reads and writes the plain-text course catalog format.
//
// Each record lists a category, a course number, and one indented line per
// weekly time slot. Records are separated by a blank line:
//
//	Category: MATH
//	Course Number: 301
//	  MWF 8:00am-9:00am
//	  TTH 1:00pm-2:00pm
package coursefile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/semestra/semestra/internal/shared/infrastructure/security"
)

// ErrMalformedFile indicates the course file could not be parsed.
var ErrMalformedFile = errors.New("malformed course file")

const (
	categoryPrefix = "Category:"
	numberPrefix   = "Course Number:"
)

// Record is one course entry in the file. SlotSpec holds the comma-joined
// slot list, e.g. "MWF, 8:00am-9:00am, TTH, 1:00pm-2:00pm".
type Record struct {
	Category string
	Number   string
	SlotSpec string
}

// Store loads and saves course records at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all records from the file. A missing file yields no records.
func (s *Store) Load() ([]Record, error) {
	f, err := security.SafeOpen(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var (
		records []Record
		current *Record
		slots   []string
		lineNo  int
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		if current.Category == "" || current.Number == "" || len(slots) == 0 {
			return fmt.Errorf("%w: incomplete record ending at line %d", ErrMalformedFile, lineNo)
		}
		current.SlotSpec = joinSlots(slots)
		records = append(records, *current)
		current = nil
		slots = nil
		return nil
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case strings.TrimSpace(line) == "":
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, categoryPrefix):
			if err := flush(); err != nil {
				return nil, err
			}
			current = &Record{Category: strings.TrimSpace(strings.TrimPrefix(line, categoryPrefix))}
		case strings.HasPrefix(line, numberPrefix):
			if current == nil {
				return nil, fmt.Errorf("%w: course number before category at line %d", ErrMalformedFile, lineNo)
			}
			current.Number = strings.TrimSpace(strings.TrimPrefix(line, numberPrefix))
		default:
			if current == nil {
				return nil, fmt.Errorf("%w: unexpected line %d", ErrMalformedFile, lineNo)
			}
			slots = append(slots, strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return records, nil
}

// Save writes all records, replacing the file atomically.
func (s *Store) Save(records []Record) error {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(categoryPrefix + " " + rec.Category + "\n")
		b.WriteString(numberPrefix + " " + rec.Number + "\n")
		for _, slot := range splitSlots(rec.SlotSpec) {
			b.WriteString("  " + slot + "\n")
		}
		b.WriteString("\n")
	}

	path, err := security.ValidateFilePath(s.path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// joinSlots turns file slot lines ("MWF 8:00am-9:00am") into the comma form.
func joinSlots(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, strings.Replace(line, " ", ", ", 1))
	}
	return strings.Join(parts, ", ")
}

// splitSlots turns the comma form back into file slot lines.
func splitSlots(spec string) []string {
	fields := strings.Split(spec, ",")
	var lines []string
	for i := 0; i+1 < len(fields); i += 2 {
		days := strings.TrimSpace(fields[i])
		times := strings.TrimSpace(fields[i+1])
		lines = append(lines, days+" "+times)
	}
	return lines
}
