package img2ascii

import (
	"errors"
	"testing"
)

func TestNewRampEmpty(t *testing.T) {
	_, err := NewRamp("")
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestRampEnds(t *testing.T) {
	ramp, err := NewRamp(DefaultCharset)
	if err != nil {
		t.Fatal(err)
	}
	if got := ramp.Glyph(0); got != ' ' {
		t.Errorf("Expected first glyph for luminance 0, got %q", got)
	}
	if got := ramp.Glyph(255); got != '@' {
		t.Errorf("Expected last glyph for luminance 255, got %q", got)
	}
}

func TestRampIndexRounding(t *testing.T) {
	ramp := Ramp("ab") // two entries: the midpoint decides
	tests := []struct {
		lum  uint8
		want int
	}{
		{0, 0},
		{127, 0}, // 0.498
		{128, 1}, // 0.502
		{255, 1},
	}
	for _, tt := range tests {
		if got := ramp.Index(tt.lum); got != tt.want {
			t.Errorf("Index(%d): expected %d, got %d", tt.lum, tt.want, got)
		}
	}
}

func TestRampSingleRune(t *testing.T) {
	ramp := Ramp("#")
	for lum := 0; lum <= 255; lum++ {
		if got := ramp.Glyph(uint8(lum)); got != '#' {
			t.Fatalf("Expected '#' for luminance %d, got %q", lum, got)
		}
	}
}

func TestRampMultibyte(t *testing.T) {
	ramp, err := NewRamp(" ░▒▓█")
	if err != nil {
		t.Fatal(err)
	}
	if len(ramp) != 5 {
		t.Fatalf("Expected 5 runes, got %d", len(ramp))
	}
	if got := ramp.Glyph(255); got != '█' {
		t.Errorf("Expected full block for white, got %q", got)
	}
	if ramp.String() != " ░▒▓█" {
		t.Errorf("String should round-trip the charset, got %q", ramp.String())
	}
}

func TestRampEmptyFallsBackToSpace(t *testing.T) {
	var ramp Ramp
	if got := ramp.Glyph(200); got != ' ' {
		t.Errorf("Expected space from an empty ramp, got %q", got)
	}
}

func TestRampMonotonic(t *testing.T) {
	ramp := Ramp(DefaultCharset)
	prev := 0
	for lum := 0; lum <= 255; lum++ {
		idx := ramp.Index(uint8(lum))
		if idx < prev {
			t.Fatalf("Index decreased at luminance %d: %d < %d", lum, idx, prev)
		}
		prev = idx
	}
}
