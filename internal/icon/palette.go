package icon

import "image/color"

// Palette of the tomato design. Values are fixed literals.
var (
	BodyRed   = color.NRGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF} // #ef4444
	ShadeRed  = color.NRGBA{R: 0xDC, G: 0x26, B: 0x26, A: 0xFF} // #dc2626
	White     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff
	Ink       = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF} // #1f2937
	Blush     = color.NRGBA{R: 0xFC, G: 0xA5, B: 0xA5, A: 0xFF} // #fca5a5
	StemGreen = color.NRGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF} // #10b981
	StemDark  = color.NRGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xFF} // #059669

	// Gloss is white at 40% opacity (102/255).
	Gloss = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 102}
)

// DesignSize is the edge length of the unscaled artwork.
const DesignSize = 120
