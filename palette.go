package pinwheel

// Palette is an ordered list of colors assigned to slots round-robin.
type Palette []Color

// DefaultPalette is the ten-color cycle used by Fan.
var DefaultPalette = Palette{
	{R: 1, G: 0.231, B: 0.188, A: 1},     // red
	{R: 0, G: 0.478, B: 1, A: 1},         // blue
	{R: 0.204, G: 0.78, B: 0.349, A: 1},  // green
	{R: 1, G: 0.8, B: 0, A: 1},           // yellow
	{R: 1, G: 0.584, B: 0, A: 1},         // orange
	{R: 0.686, G: 0.322, B: 0.871, A: 1}, // purple
	{R: 1, G: 0.176, B: 0.333, A: 1},     // pink
	{R: 0.557, G: 0.557, B: 0.576, A: 1}, // gray
	{R: 0.196, G: 0.678, B: 0.902, A: 1}, // cyan
	{R: 0.635, G: 0.518, B: 0.369, A: 1}, // brown
}

// At returns the color for slot. An empty palette yields ColorWhite.
func (p Palette) At(slot int) Color {
	if len(p) == 0 {
		return ColorWhite
	}
	i := slot % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
