package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillShadeRGBA writes one translucent pixel per value: zero values are
// transparent, others use tint with alpha scaled by value/peak.
func fillShadeRGBA(buf []byte, values []uint8, peak uint8, tint color.RGBA) {
	for i, v := range values {
		base := i * 4
		if v == 0 || peak == 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		if v > peak {
			v = peak
		}
		a := uint16(tint.A) * uint16(v) / uint16(peak)
		// Premultiplied alpha, as ebiten expects.
		buf[base+0] = uint8(uint16(tint.R) * a / 255)
		buf[base+1] = uint8(uint16(tint.G) * a / 255)
		buf[base+2] = uint8(uint16(tint.B) * a / 255)
		buf[base+3] = uint8(a)
	}
}
