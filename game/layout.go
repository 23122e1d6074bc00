package game

import "strings"

const (
	layoutMine = "*"
	layoutSafe = "."
)

// ParseLayout reads a mine layout: one line per row, "*" for a mine and
// "." or "#" for a safe square. Surrounding blank lines are ignored.
func ParseLayout(in string) ([][]bool, error) {
	in = strings.Trim(strings.ReplaceAll(in, "\r\n", "\n"), "\n")
	if strings.TrimSpace(in) == "" {
		return nil, &InvalidLayoutError{Row: 0, Reason: "layout is empty"}
	}

	rows := strings.Split(in, "\n")
	mines := make([][]bool, len(rows))

	for y, row := range rows {
		row = strings.TrimSpace(row)
		if y > 0 && len(row) != len(mines[0]) {
			return nil, &InvalidLayoutError{Row: y, Reason: "rows must all have the same width"}
		}
		if row == "" {
			return nil, &InvalidLayoutError{Row: y, Reason: "row is empty"}
		}

		mines[y] = make([]bool, len(row))
		for x, c := range row {
			switch string(c) {
			case layoutMine:
				mines[y][x] = true
			case layoutSafe, "#":
			default:
				return nil, &InvalidLayoutError{Row: y, Reason: "unexpected character " + string(c)}
			}
		}
	}

	return mines, nil
}
