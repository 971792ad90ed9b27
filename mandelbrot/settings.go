package mandelbrot

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/misc"
)

type Settings struct {
	logger bslogger.Logger

	Height        int
	InSetShade    uint8
	LowerRight    Point
	MaxIterations int
	UpperLeft     Point
	Width         int
	WorkerCount   int
}

// NewSettings loads render settings from a json file so a run can be
// reproduced from the file alone. A file that names no viewport corners gets
// the default viewport; corners the file spells out are kept as written,
// even degenerate ones, since a collapsed viewport is still renderable.
func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger: bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil),
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	misc.CheckError(err, s.logger, misc.Fatal)
	misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)

	var corners struct {
		LowerRight *Point
		UpperLeft  *Point
	}
	misc.CheckError(json.Unmarshal(fileBytes, &corners), s.logger, misc.Fatal)
	if corners.UpperLeft == nil && corners.LowerRight == nil {
		s.UpperLeft = Point{X: -2.5, Y: 1.5}
		s.LowerRight = Point{X: 1.5, Y: -1.5}
	}

	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Width: %d Height: %d\n", s.Width, s.Height)
	output += fmt.Sprintf("UpperLeft: %s LowerRight: %s\n", s.UpperLeft.String(), s.LowerRight.String())
	output += fmt.Sprintf("MaxIterations: %d InSetShade: %d WorkerCount: %d\n", s.MaxIterations, s.InSetShade, s.WorkerCount)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Height <= 0 {
		s.Height = 750
	}
	if s.InSetShade == 0 {
		s.InSetShade = 16
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = 255
	}
	if s.Width <= 0 {
		s.Width = 1000
	}
	if s.WorkerCount <= 0 {
		s.WorkerCount = runtime.NumCPU()
	}

	// The mapping assumes the top of the image has the larger imaginary part
	if s.UpperLeft.Y < s.LowerRight.Y {
		s.UpperLeft.Y, s.LowerRight.Y = s.LowerRight.Y, s.UpperLeft.Y
		s.logger.Infof("Swapping viewport corners so the upper left corner is on top.")
	}

	return nil
}

// Bounds returns the pixel dimensions of the image being rendered
func (s *Settings) Bounds() Bounds {
	return Bounds{Width: s.Width, Height: s.Height}
}

// Viewport returns the rectangle of the complex plane being rendered
func (s *Settings) Viewport() Viewport {
	return Viewport{UpperLeft: s.UpperLeft, LowerRight: s.LowerRight}
}
