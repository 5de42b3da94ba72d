package parser

import (
	"regexp"
	"strconv"
)

// gridPattern matches map grid references like "A7" or "D 10". Columns run
// A-J on the in-game minimap.
var gridPattern = regexp.MustCompile(`([A-J])\s*(\d{1,2})`)

// GridRef is a minimap grid cell.
type GridRef struct {
	Column string
	Row    int
}

// ParseGridRef extracts a minimap grid reference from recognized text.
func (p *Parser) ParseGridRef(text string) (GridRef, error) {
	m := gridPattern.FindStringSubmatch(text)
	if m == nil {
		return GridRef{}, ErrNoGridRef
	}
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return GridRef{}, ErrNoGridRef
	}
	return GridRef{Column: m[1], Row: row}, nil
}
