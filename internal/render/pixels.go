package render

import "image/color"

// FillVitalityRGBA converts a vitality buffer into RGBA pixels in buf,
// interpolating between the dead and live colors so graduated grids shade
// smoothly. Boolean grids hit the two endpoints exactly.
func FillVitalityRGBA(buf []byte, cells []float64, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, v := range cells {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		base := i * 4
		buf[base+0] = lerp8(uint8(rOff>>8), uint8(rOn>>8), v)
		buf[base+1] = lerp8(uint8(gOff>>8), uint8(gOn>>8), v)
		buf[base+2] = lerp8(uint8(bOff>>8), uint8(bOn>>8), v)
		buf[base+3] = lerp8(uint8(aOff>>8), uint8(aOn>>8), v)
	}
}

const paletteLevels = 64

// GrayPalette returns the quantization palette shared by the paletted image
// fill and the GIF exporter: dead-color through live-color in paletteLevels
// steps.
func GrayPalette(on, off color.Color) color.Palette {
	rOn, gOn, bOn, _ := on.RGBA()
	rOff, gOff, bOff, _ := off.RGBA()
	p := make(color.Palette, paletteLevels)
	for i := range p {
		t := float64(i) / float64(paletteLevels-1)
		p[i] = color.RGBA{
			R: lerp8(uint8(rOff>>8), uint8(rOn>>8), t),
			G: lerp8(uint8(gOff>>8), uint8(gOn>>8), t),
			B: lerp8(uint8(bOff>>8), uint8(bOn>>8), t),
			A: 0xff,
		}
	}
	return p
}

// FillPaletted quantizes a vitality buffer into palette indices for the
// palette produced by GrayPalette.
func FillPaletted(pix []uint8, cells []float64) {
	for i, v := range cells {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		pix[i] = uint8(v * float64(paletteLevels-1))
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
