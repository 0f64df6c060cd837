package particles

import "testing"

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#00f3ff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (RGBA{R: 0x00, G: 0xf3, B: 0xff, A: 1}) {
		t.Fatalf("got %+v", c)
	}
	if c.Hex() != "#00f3ff" {
		t.Fatalf("round trip gave %s", c.Hex())
	}
	if _, err := ParseHex("#fff"); err == nil {
		t.Fatalf("expected error for short colour")
	}
	if _, err := ParseHex("zzzzzz"); err == nil {
		t.Fatalf("expected error for non-hex colour")
	}
}

func TestWithAlphaClamps(t *testing.T) {
	if a := NeonBlue.WithAlpha(2).A; a != 1 {
		t.Fatalf("alpha must clamp to 1, got %v", a)
	}
	if a := NeonBlue.WithAlpha(-1).A; a != 0 {
		t.Fatalf("alpha must clamp to 0, got %v", a)
	}
	if css := RoyalAmethyst.WithAlpha(0.5).CSS(); css != "rgba(139, 92, 246, 0.500)" {
		t.Fatalf("unexpected css %q", css)
	}
}
