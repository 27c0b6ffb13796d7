// Package gridfile reads and writes boards as plain text. The input
// format is one row per line, cells separated by whitespace or commas,
// with blank lines and '#' comments skipped.
package gridfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
)

// Parse reads a size×size board from r. Row length and row count must
// match size; cell values are not range-checked here, that is the
// validator's job.
func Parse(r io.Reader, size int) (*domain.Board, error) {
	b := domain.NewBoard(size)
	row := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if row >= size {
			return nil, fmt.Errorf("too many rows: expected %d", size)
		}
		fields := strings.Fields(line)
		if strings.Contains(line, ",") {
			fields = strings.Split(line, ",")
		}
		if len(fields) != size {
			return nil, fmt.Errorf("row %d has %d values, expected %d", row+1, len(fields), size)
		}
		for c, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid number %q", row+1, f)
			}
			b.Cells[row][c] = v
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if row != size {
		return nil, fmt.Errorf("file has %d rows, expected %d", row, size)
	}
	return b, nil
}

// ParseFile reads a board from the named file.
func ParseFile(path string, size int) (*domain.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, size)
}

// Export writes a solved board to w with a banner and box separators.
func Export(w io.Writer, b *domain.Board) error {
	box := domain.BoxSize(b.Size)
	if box == 0 {
		box = b.Size
	}
	rule := strings.Repeat("=", b.Size*2+3)

	if _, err := fmt.Fprintf(w, "Sudoku Solution (%dx%d)\n%s\n", b.Size, b.Size, rule); err != nil {
		return err
	}
	for r := 0; r < b.Size; r++ {
		if r%box == 0 && r != 0 {
			if _, err := fmt.Fprintln(w, strings.Repeat("-", b.Size*2+3)); err != nil {
				return err
			}
		}
		var sb strings.Builder
		for c := 0; c < b.Size; c++ {
			if c%box == 0 && c != 0 {
				sb.WriteString(" | ")
			}
			v := b.Cells[r][c]
			switch {
			case v == 0:
				sb.WriteString(". ")
			case b.Size > 9:
				fmt.Fprintf(&sb, "%2d", v)
			default:
				fmt.Fprintf(&sb, "%d ", v)
			}
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, rule)
	return err
}

// ExportFile writes a board to the named file, creating or truncating it.
func ExportFile(path string, b *domain.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Export(f, b)
}
