package mandelbrot

import "testing"

func TestParseBounds(t *testing.T) {
	bounds, err := ParseBounds("1000x750")
	if err != nil {
		t.Fatalf("ParseBounds(1000x750) failed: %s", err)
	}
	if bounds.Width != 1000 || bounds.Height != 750 {
		t.Errorf("ParseBounds(1000x750) = %s", bounds.String())
	}

	bad := []string{"", "1000", "1000x", "x750", "1000x750x2", "tenxten", "1000,750", "0x750", "-10x20"}
	for _, value := range bad {
		if _, err := ParseBounds(value); err == nil {
			t.Errorf("ParseBounds(%q) accepted malformed bounds", value)
		}
	}
}

func TestParsePoint(t *testing.T) {
	point, err := ParsePoint("-1.20,0.35")
	if err != nil {
		t.Fatalf("ParsePoint(-1.20,0.35) failed: %s", err)
	}
	if point.X != -1.20 || point.Y != 0.35 {
		t.Errorf("ParsePoint(-1.20,0.35) = %s", point.String())
	}

	bad := []string{"", "-1.20", "-1.20,", ",0.35", "-1.20;0.35", "re,im"}
	for _, value := range bad {
		if _, err := ParsePoint(value); err == nil {
			t.Errorf("ParsePoint(%q) accepted a malformed point", value)
		}
	}
}
