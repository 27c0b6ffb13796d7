package domain

import (
	"math"
	"strings"
)

// NewBoard returns an empty size×size board.
func NewBoard(size int) *Board {
	cells := make([][]int, size)
	for r := range cells {
		cells[r] = make([]int, size)
	}
	return &Board{Size: size, Cells: cells}
}

// FromRows builds a board from row slices. The row count fixes the size;
// no shape or value checking happens here, that is the validator's job.
func FromRows(rows [][]int) *Board {
	b := &Board{Size: len(rows), Cells: make([][]int, len(rows))}
	for r := range rows {
		b.Cells[r] = append([]int(nil), rows[r]...)
	}
	return b
}

// Clone creates an independent copy of the board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	out := &Board{Size: b.Size, Cells: make([][]int, len(b.Cells))}
	for r := range b.Cells {
		out.Cells[r] = append([]int(nil), b.Cells[r]...)
	}
	if b.Fixed != nil {
		out.Fixed = make([][]bool, len(b.Fixed))
		for r := range b.Fixed {
			out.Fixed[r] = append([]bool(nil), b.Fixed[r]...)
		}
	}
	return out
}

// EmptyCount returns the number of empty cells on the board.
func (b *Board) EmptyCount() int {
	n := 0
	for _, row := range b.Cells {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// BoxSize returns √Size when Size is a perfect square, otherwise 0.
func BoxSize(size int) int {
	if size <= 0 {
		return 0
	}
	box := int(math.Sqrt(float64(size)))
	if box*box != size {
		return 0
	}
	return box
}

// Format returns a human-readable board with box separators.
// Empty cells render as '.'; boards larger than 9×9 use two-digit cells.
func (b *Board) Format() string {
	box := BoxSize(b.Size)
	if box == 0 {
		box = b.Size
	}
	wide := b.Size > 9

	var sb strings.Builder
	cellWidth := 2
	if wide {
		cellWidth = 3
	}
	line := strings.Repeat("-", b.Size*cellWidth+(b.Size/box-1)*2)

	for r := 0; r < b.Size; r++ {
		if r%box == 0 && r != 0 {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Size; c++ {
			if c%box == 0 && c != 0 {
				sb.WriteString("| ")
			}
			v := b.Cells[r][c]
			switch {
			case v == 0 && wide:
				sb.WriteString(" . ")
			case v == 0:
				sb.WriteString(". ")
			case wide:
				sb.WriteString(pad2(v))
			default:
				sb.WriteByte('0' + byte(v))
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pad2(v int) string {
	if v < 10 {
		return " " + string('0'+byte(v)) + " "
	}
	return string('0'+byte(v/10)) + string('0'+byte(v%10)) + " "
}
