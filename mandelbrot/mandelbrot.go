package mandelbrot

import "fmt"

// Point is a location on the complex plane
type Point struct {
	X float64
	Y float64
}

func (p *Point) String() string {
	output := "{Point "
	output += fmt.Sprintf("X: %f ", p.X)
	output += fmt.Sprintf("Y: %f}", p.Y)
	return output
}

// Pixel is a location on the image, indexed from the top left corner
type Pixel struct {
	Column int
	Row    int
}

func (p *Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Column: %d ", p.Column)
	output += fmt.Sprintf("Row: %d}", p.Row)
	return output
}

// Bounds is the size of the image in pixels
type Bounds struct {
	Height int
	Width  int
}

func (b *Bounds) String() string {
	output := "{Bounds "
	output += fmt.Sprintf("Width: %d ", b.Width)
	output += fmt.Sprintf("Height: %d}", b.Height)
	return output
}

// PixelCount returns the number of pixels the bounds cover
func (b *Bounds) PixelCount() int {
	return b.Width * b.Height
}

// Viewport is the rectangle of the complex plane that maps onto the image.
// The top of the image corresponds to the larger imaginary value, so
// UpperLeft.Y >= LowerRight.Y is assumed.
type Viewport struct {
	LowerRight Point
	UpperLeft  Point
}

func (v *Viewport) String() string {
	output := "{Viewport "
	output += fmt.Sprintf("UpperLeft: %s ", v.UpperLeft.String())
	output += fmt.Sprintf("LowerRight: %s}", v.LowerRight.String())
	return output
}

// PixelToPoint converts the (column, row) point on the image to the (x, y)
// point on the complex plane.
//
// Column 0 lands on the upper left corner's real part and row 0 on its
// imaginary part, with rows growing toward the lower right corner. The
// caller guarantees the bounds are positive.
func PixelToPoint(bounds Bounds, pixel Pixel, viewport Viewport) Point {
	planeWidth := viewport.LowerRight.X - viewport.UpperLeft.X
	planeHeight := viewport.UpperLeft.Y - viewport.LowerRight.Y

	return Point{
		X: viewport.UpperLeft.X + float64(pixel.Column)*planeWidth/float64(bounds.Width),
		Y: viewport.UpperLeft.Y - float64(pixel.Row)*planeHeight/float64(bounds.Height),
	}
}

// EscapeTime iterates z = z*z + c from z = 0 up to limit times and reports
// the zero-indexed iteration at which |z| left the circle of radius 2. The
// second return value is false when the point stayed bounded through every
// iteration, meaning c is treated as a member of the set.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func EscapeTime(c Point, limit int) (int, bool) {
	x1, y1, x2, y2 := 0.0, 0.0, 0.0, 0.0
	for iteration := 0; iteration < limit; iteration++ {
		y1 = 2*x1*y1 + c.Y
		x1 = x2 - y2 + c.X
		x2 = x1 * x1
		y2 = y1 * y1
		if x2+y2 > 4.0 {
			return iteration, true
		}
	}
	return 0, false
}
