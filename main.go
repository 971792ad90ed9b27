package main

import (
	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/misc"
	"mandelbrot/render"
)

var (
	inSetShade             int
	maxIterations, workers int
	settingsFile           string
)

func main() {
	logger := bslogger.NewLogger("Mandelbrot", bslogger.Normal, nil)
	settings, outputFile := parseArguments(logger)

	renderer := render.NewRenderer(settings)
	pixels, err := renderer.Render()
	misc.CheckError(err, logger, misc.Fatal)

	err = misc.WriteImage(outputFile, pixels, settings.Width, settings.Height)
	misc.CheckError(err, logger, misc.Fatal)

	logger.Infof("Saved image to %s", outputFile)
}
