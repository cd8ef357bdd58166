package render

import (
	"image/color"
	"testing"
)

func TestFillVitalityRGBAEndpoints(t *testing.T) {
	cells := []float64{0, 1, 0.5}
	buf := make([]byte, 4*len(cells))
	FillVitalityRGBA(buf, cells, color.White, color.Black)

	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 || buf[3] != 255 {
		t.Errorf("dead cell pixel = %v, want opaque black", buf[0:4])
	}
	if buf[4] != 255 || buf[5] != 255 || buf[6] != 255 || buf[7] != 255 {
		t.Errorf("live cell pixel = %v, want opaque white", buf[4:8])
	}
	if buf[8] < 120 || buf[8] > 135 {
		t.Errorf("half-vitality red channel = %d, want mid gray", buf[8])
	}
}

func TestFillVitalityRGBAClampsOutOfRange(t *testing.T) {
	cells := []float64{-0.5, 1.5}
	buf := make([]byte, 4*len(cells))
	FillVitalityRGBA(buf, cells, color.White, color.Black)

	if buf[0] != 0 {
		t.Errorf("negative vitality rendered %d, want dead color", buf[0])
	}
	if buf[4] != 255 {
		t.Errorf("overrange vitality rendered %d, want live color", buf[4])
	}
}

func TestGrayPaletteAndQuantizerAgree(t *testing.T) {
	p := GrayPalette(color.White, color.Black)
	if len(p) != paletteLevels {
		t.Fatalf("palette size = %d, want %d", len(p), paletteLevels)
	}

	cells := []float64{0, 1}
	pix := make([]uint8, len(cells))
	FillPaletted(pix, cells)
	if pix[0] != 0 {
		t.Errorf("dead cell quantized to %d, want index 0", pix[0])
	}
	if pix[1] != paletteLevels-1 {
		t.Errorf("live cell quantized to %d, want last index", pix[1])
	}
}
