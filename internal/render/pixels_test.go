package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 9, G: 8, B: 7, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 5}, palette)
	assert.Equal(t, []byte{1, 2, 3, 255, 9, 8, 7, 255, 9, 8, 7, 255}, buf)

	fillPaletteRGBA(buf, []uint8{0, 1, 5}, nil)
	assert.Equal(t, make([]byte, 12), buf)
}

func TestFillShadeRGBA(t *testing.T) {
	buf := make([]byte, 12)
	fillShadeRGBA(buf, []uint8{0, 4, 8}, 8, color.RGBA{R: 255, G: 0, B: 0, A: 200})
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[0:4])
	assert.Equal(t, []byte{100, 0, 0, 100}, buf[4:8])
	assert.Equal(t, []byte{200, 0, 0, 200}, buf[8:12])
}
