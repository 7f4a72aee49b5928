package render

import "image/color"

// fillCellsRGBA expands binary cell data (0 dead, anything else alive) into
// RGBA pixels in buf, one pixel per cell.
func fillCellsRGBA(buf []byte, cells []uint8, alive, dead color.Color) {
	rA, gA, bA, aA := alive.RGBA()
	rD, gD, bD, aD := dead.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rA >> 8)
			buf[base+1] = uint8(gA >> 8)
			buf[base+2] = uint8(bA >> 8)
			buf[base+3] = uint8(aA >> 8)
			continue
		}
		buf[base+0] = uint8(rD >> 8)
		buf[base+1] = uint8(gD >> 8)
		buf[base+2] = uint8(bD >> 8)
		buf[base+3] = uint8(aD >> 8)
	}
}
