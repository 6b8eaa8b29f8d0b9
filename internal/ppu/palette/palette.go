// Package palette maps the Game Boy's four colour indices to RGB
// values for display. The hardware palette registers (BGP, OBP0 and
// OBP1) remap colour indices to shades; the shades are then coloured
// through the selected display palette.
package palette

const (
	// Greyscale is the default greyscale palette.
	Greyscale = iota
	// Green is the green palette which attempts to emulate the
	// original colour palette as it would have appeared on the
	// original Game Boy.
	Green
	// Red is a red palette.
	Red
	// Yellow is a yellow palette.
	Yellow
)

// Palette is an array of 4 RGB values, one per shade.
type Palette struct {
	Colors [4][3]uint8
}

// Current is the currently selected display palette.
var Current = Greyscale

// Palettes is a list of all available display palettes.
var Palettes = []Palette{
	// Greyscale
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	// Green
	{
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
	// Red
	{
		Colors: [4][3]uint8{
			{0xFF, 0x00, 0x00},
			{0xCC, 0x00, 0x00},
			{0x77, 0x00, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
	// Yellow
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0x00},
			{0xCC, 0xCC, 0x00},
			{0x77, 0x77, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
}

// GetColour returns the colour for the given shade from the Current
// palette.
func GetColour(index uint8) [3]uint8 {
	return Palettes[Current].Colors[index]
}

// GetColourFor returns the colour for the given colour index after
// remapping it through a hardware palette register value.
func GetColourFor(index, register uint8) [3]uint8 {
	return Palettes[Current].Colors[register>>(index*2)&0x03]
}

// ByName returns the palette index for the given name, falling back to
// Greyscale for names it does not know.
func ByName(name string) int {
	switch name {
	case "green":
		return Green
	case "red":
		return Red
	case "yellow":
		return Yellow
	default:
		return Greyscale
	}
}
