// Package load parses readings files into datasets and memoizes them by path.
package load

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Veraticus/sprout/internal/model"
)

// naTokens are cell spellings treated as missing readings.
var naTokens = map[string]struct{}{
	"":         {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"NaN":      {},
	"nan":      {},
	"-NaN":     {},
	"-nan":     {},
	"null":     {},
	"NULL":     {},
	"None":     {},
	"#N/A":     {},
	"<NA>":     {},
	"#NA":      {},
	"#N/A N/A": {},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads delimited text into a Dataset. The header row is taken verbatim;
// blank headers become "Unnamed: <i>" and repeated headers get ".1", ".2"
// suffixes.
func Parse(source string, r io.Reader) (*model.Dataset, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	firstLine, err := br.Peek(br.Size())
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, newLoadError(source, ReasonUnreadable, err)
	}

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(firstLine)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, newLoadError(source, ReasonEmpty, errors.New("no header row"))
	}
	if err != nil {
		return nil, newLoadError(source, ReasonUnreadable, fmt.Errorf("read header: %w", err))
	}

	columns := uniqueHeaders(header)
	if len(columns) == 0 {
		return nil, newLoadError(source, ReasonEmpty, errors.New("no columns"))
	}

	var rows [][]model.Value
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, newLoadError(source, ReasonUnreadable, fmt.Errorf("read row %d: %w", line, err))
		}
		if len(record) > len(columns) {
			return nil, newLoadError(source, ReasonUnreadable,
				fmt.Errorf("row %d has %d fields, header has %d", line, len(record), len(columns)))
		}

		row := make([]model.Value, len(columns))
		for i := range row {
			if i < len(record) {
				row[i] = ParseCell(record[i])
			} else {
				row[i] = model.Missing()
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, newLoadError(source, ReasonEmpty, errors.New("header only, no records"))
	}

	ds, err := model.NewDataset(source, columns, rows)
	if err != nil {
		return nil, newLoadError(source, ReasonUnreadable, err)
	}
	return ds, nil
}

// ParseCell infers a cell's type: NA spellings are missing, true/false are
// booleans, anything strconv can read as a finite float is a number, the rest
// is text. Infinities and overflowing literals are missing.
func ParseCell(raw string) model.Value {
	s := strings.TrimSpace(raw)
	if _, na := naTokens[s]; na {
		return model.Missing()
	}

	switch strings.ToLower(s) {
	case "true":
		return model.Bool(true)
	case "false":
		return model.Bool(false)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return model.Number(f)
	}
	return model.String(raw)
}

func uniqueHeaders(header []string) []string {
	if len(header) == 1 && strings.TrimSpace(header[0]) == "" {
		return nil
	}

	seen := make(map[string]bool, len(header))
	out := make([]string, len(header))
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		candidate := name
		for n := 1; seen[candidate]; n++ {
			candidate = name + "." + strconv.Itoa(n)
		}
		seen[candidate] = true
		out[i] = candidate
	}
	return out
}

// sniffDelimiter picks the most frequent of the common separators on the
// header line, defaulting to a comma.
func sniffDelimiter(sample []byte) rune {
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}

	best, bestCount := ',', 0
	for _, sep := range []rune{',', ';', '\t', '|'} {
		if n := bytes.Count(sample, []byte(string(sep))); n > bestCount {
			best, bestCount = sep, n
		}
	}
	return best
}
