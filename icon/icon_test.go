package icon

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#0d47a1", color.RGBA{13, 71, 161, 255}, false},
		{"#0d47a1ff", color.RGBA{13, 71, 161, 255}, false},
		{"#00000000", color.RGBA{0, 0, 0, 0}, false},
		{"ffffff", color.RGBA{255, 255, 255, 255}, false},
		{" #FFFFFF80 ", color.RGBA{255, 255, 255, 128}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"#ffffffzz", color.RGBA{}, true},
		{"", color.RGBA{}, true},
		{"# 1 2 3", color.RGBA{}, true},
		{"#12 345", color.RGBA{}, true},
		{"#-1-2-3", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{13, 71, 161, 255}, {0, 0, 0, 0}, {255, 255, 255, 128}} {
		got, err := ParseColor(Hex(c))
		if err != nil {
			t.Fatalf("ParseColor(Hex(%v)): %v", c, err)
		}
		if got != c {
			t.Errorf("round trip %v -> %q -> %v", c, Hex(c), got)
		}
	}
}

func TestNewFillsBackground(t *testing.T) {
	bg := color.RGBA{13, 71, 161, 255}
	img := New(16, bg)
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("bounds = %v, want 16x16", b)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := img.RGBAAt(x, y); got != bg {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, bg)
			}
		}
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := New(4, color.RGBA{1, 2, 3, 255})

	if err := Save(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestSaveMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := Save(path, New(4, color.RGBA{})); err == nil {
		t.Fatal("expected error writing into missing directory")
	}
}
