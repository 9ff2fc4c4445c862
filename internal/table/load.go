package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source describes a delimited file to load. It replaces the hard-coded
// module-level path constants of earlier tooling: callers construct one per
// file and pass it in explicitly.
type Source struct {
	Path      string
	Delimiter rune
}

// Load opens the file described by src and parses it with Read. A missing
// file surfaces as a wrapped fs.ErrNotExist.
func Load(src Source) (*Table, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Path, err)
	}
	defer f.Close()
	t, err := Read(f, src.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Path, err)
	}
	return t, nil
}

// Read parses a delimited stream into a table. The first record is the
// header. Parsing is strict: a row whose field count differs from the
// header's fails with MalformedInputError. Quoting is handled lazily because
// the reference tables contain free-text fields with stray quote characters.
func Read(r io.Reader, delimiter rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input: no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	var rows [][]string
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++
		if len(rec) != len(cols) {
			return nil, &MalformedInputError{Line: line, Want: len(cols), Got: len(rec)}
		}
		row := make([]string, len(rec))
		copy(row, rec)
		rows = append(rows, row)
	}
	return New(cols, rows)
}

// LoadFirstTokens is the lenient loader for semi-structured files such as
// the CARD mutation list, whose rows do not parse as a consistent table.
// It skips skipLines header lines, then takes the first whitespace-delimited
// token of each non-empty line, producing a single-column table named
// column.
func LoadFirstTokens(path string, skipLines int, column string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var rows [][]string
	ln := 0
	for sc.Scan() {
		ln++
		if ln <= skipLines {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, []string{fields[0]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return New([]string{column}, rows)
}
