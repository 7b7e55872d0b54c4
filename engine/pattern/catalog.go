package pattern

// Canvas dimensions. Placements are authored in the landscape frame, which
// is also the fixed storage shape of every encoded bitmap.
const (
	LandscapeWidth  = 140
	LandscapeHeight = 68
	PortraitWidth   = 68
	PortraitHeight  = 140
)

// Placement is one glyph's target center position and nominal size within
// a pattern's 140×68 reference frame.
type Placement struct {
	CX   int
	CY   int
	Size int
}

// Pattern is one fixed multi-glyph layout. Placement order is rendering
// order: later placements draw over earlier ones where they overlap.
type Pattern struct {
	Name       string
	Placements []Placement
}

// Catalog returns the ten fixed glyph patterns in emission order. The
// returned slice is freshly allocated on every call; the catalog data is
// never mutated.
func Catalog() []Pattern {
	return []Pattern{
		{"pattern1", []Placement{{70, 34, 60}}},
		{"pattern2", []Placement{{70, 34, 48}, {30, 15, 28}, {110, 50, 20}}},
		{"pattern3", []Placement{{55, 30, 42}, {35, 18, 28}, {78, 42, 32}, {48, 50, 20}}},
		{"pattern4", []Placement{
			{50, 28, 50}, {28, 16, 32}, {88, 44, 40}, {42, 54, 26},
			{70, 18, 28}, {108, 34, 30},
		}},
		{"pattern5", []Placement{{30, 34, 18}, {60, 34, 26}, {90, 34, 34}, {120, 34, 42}}},
		{"pattern6", []Placement{
			{15, 50, 20}, {25, 18, 24}, {60, 12, 30}, {85, 48, 26},
			{105, 20, 24}, {125, 40, 18},
		}},
		{"pattern7", []Placement{
			{70, 34, 28}, // center
			{70, 12, 16}, {95, 20, 16}, {105, 44, 16}, {70, 56, 16},
			{45, 48, 16}, {35, 24, 16},
		}},
		{"pattern8", []Placement{
			{70, 34, 22}, // center
			{20, 10, 16}, {120, 10, 16}, {20, 58, 16}, {120, 58, 16}, // corners
			{35, 25, 14}, {105, 25, 14}, {35, 43, 14}, {105, 43, 14}, // inner diagonals
		}},
		{"pattern9", []Placement{
			{10, 34, 16}, {25, 22, 18}, {40, 14, 20}, {55, 22, 22},
			{70, 34, 24}, {85, 46, 22}, {100, 54, 20}, {115, 46, 18},
			{130, 34, 16},
		}},
		{"pattern10", []Placement{
			{20, 20, 18}, {50, 15, 22}, {80, 12, 16}, {110, 18, 20},
			{30, 40, 14}, {60, 38, 26}, {90, 42, 18}, {120, 36, 22},
			{40, 57, 16}, {75, 54, 20}, {105, 52, 16},
		}},
	}
}
