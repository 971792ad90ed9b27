package mandelbrot

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBounds parses an image size formatted as WIDTHxHEIGHT, e.g. 1000x750.
// Both dimensions must be positive integers.
func ParseBounds(value string) (Bounds, error) {
	width, height, found := strings.Cut(value, "x")
	if !found {
		return Bounds{}, fmt.Errorf("bounds %q are not formatted as WIDTHxHEIGHT", value)
	}
	w, err := strconv.Atoi(width)
	if err != nil {
		return Bounds{}, fmt.Errorf("bounds width %q is not a number", width)
	}
	h, err := strconv.Atoi(height)
	if err != nil {
		return Bounds{}, fmt.Errorf("bounds height %q is not a number", height)
	}
	if w <= 0 || h <= 0 {
		return Bounds{}, fmt.Errorf("bounds %q must be positive in both dimensions", value)
	}
	return Bounds{Width: w, Height: h}, nil
}

// ParsePoint parses a point on the complex plane formatted as RE,IM,
// e.g. -1.20,0.35.
func ParsePoint(value string) (Point, error) {
	re, im, found := strings.Cut(value, ",")
	if !found {
		return Point{}, fmt.Errorf("point %q is not formatted as RE,IM", value)
	}
	x, err := strconv.ParseFloat(re, 64)
	if err != nil {
		return Point{}, fmt.Errorf("point real part %q is not a number", re)
	}
	y, err := strconv.ParseFloat(im, 64)
	if err != nil {
		return Point{}, fmt.Errorf("point imaginary part %q is not a number", im)
	}
	return Point{X: x, Y: y}, nil
}
