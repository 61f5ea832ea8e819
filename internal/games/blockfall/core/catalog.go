package core

import "strings"

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeL
	ShapeT
	ShapeJ
	ShapeO
	ShapeZ
	ShapeS
	ShapeCount // Sentinel value for iteration
)

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeL:
		return "L"
	case ShapeT:
		return "T"
	case ShapeJ:
		return "J"
	case ShapeO:
		return "O"
	case ShapeZ:
		return "Z"
	case ShapeS:
		return "S"
	default:
		return "?"
	}
}

// ParseShape converts a single-letter shape name to a Shape.
func ParseShape(s string) (Shape, bool) {
	for sh := Shape(0); sh < ShapeCount; sh++ {
		if strings.EqualFold(sh.String(), strings.TrimSpace(s)) {
			return sh, true
		}
	}
	return ShapeI, false
}

// Template is an immutable piece definition. Offsets are relative to the
// pivot, which is always Offsets[1] == (0,0).
type Template struct {
	Shape   Shape
	Offsets [4]Coord
	Color   Color
}

// Catalog is the fixed set of piece templates, indexed by Shape. It is an
// array so that copies handed out are never shared.
type Catalog [ShapeCount]Template

// classic lists the seven shapes in spawn orientation, pivot second.
var classic = Catalog{
	{Shape: ShapeI, Offsets: [4]Coord{{0, -1}, {0, 0}, {0, 1}, {0, 2}}, Color: ColorBlue},
	{Shape: ShapeL, Offsets: [4]Coord{{0, -1}, {0, 0}, {0, 1}, {1, -1}}, Color: ColorTeal},
	{Shape: ShapeT, Offsets: [4]Coord{{0, -1}, {0, 0}, {0, 1}, {1, 0}}, Color: ColorPurple},
	{Shape: ShapeJ, Offsets: [4]Coord{{0, -1}, {0, 0}, {0, 1}, {1, 1}}, Color: ColorOrange},
	{Shape: ShapeO, Offsets: [4]Coord{{0, 1}, {0, 0}, {1, 0}, {1, 1}}, Color: ColorYellow},
	{Shape: ShapeZ, Offsets: [4]Coord{{0, -1}, {0, 0}, {1, 0}, {1, 1}}, Color: ColorGreen},
	{Shape: ShapeS, Offsets: [4]Coord{{0, 1}, {0, 0}, {1, -1}, {1, 0}}, Color: ColorRed},
}

// ClassicCatalog returns the seven classic templates with their default colors.
func ClassicCatalog() Catalog {
	return classic
}

// NewCatalog returns the classic templates recolored by the given table.
// Shapes missing from the table keep their default color.
func NewCatalog(colors map[Shape]Color) Catalog {
	cat := classic
	for i := range cat {
		if c, ok := colors[cat[i].Shape]; ok {
			cat[i].Color = c
		}
	}
	return cat
}
