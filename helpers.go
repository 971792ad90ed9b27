package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] OUTFILE WIDTHxHEIGHT UPPERLEFT LOWERRIGHT\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Example: %s mandel.png 1000x750 -1.20,0.35 -1,0.20\n", os.Args[0])
	flag.PrintDefaults()
}

// parseArguments collects the render settings and the output file path. Bad
// arguments are configuration errors: they end the process before any
// rendering starts and nothing is written.
func parseArguments(logger bslogger.Logger) (mandelbrot.Settings, string) {
	// A shade of 0 reads as unset; the in-set shade is kept nonzero so the
	// set stays distinguishable from the darkest escape counts
	flag.IntVar(&inSetShade, "shade", 0, "Intensity written for points that never escape (0 means the default of 16)")
	flag.IntVar(&maxIterations, "maxIterations", 0, "Iterations to run to verify each point (0 means the default of 255)")
	flag.StringVar(&settingsFile, "settings", "", "Json file with render settings")
	flag.IntVar(&workers, "workers", 0, "Number of workers to render with (0 means one per cpu)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 4 {
		usage()
		os.Exit(1)
	}

	var settings mandelbrot.Settings
	if settingsFile != "" {
		settings = mandelbrot.NewSettings(settingsFile)
	}
	if inSetShade > 0 {
		settings.InSetShade = uint8(inSetShade)
	}
	if maxIterations > 0 {
		settings.MaxIterations = maxIterations
	}
	if workers > 0 {
		settings.WorkerCount = workers
	}

	outputFile := flag.Arg(0)

	bounds, err := mandelbrot.ParseBounds(flag.Arg(1))
	misc.CheckError(err, logger, misc.Fatal)
	settings.Width = bounds.Width
	settings.Height = bounds.Height

	settings.UpperLeft, err = mandelbrot.ParsePoint(flag.Arg(2))
	misc.CheckError(err, logger, misc.Fatal)

	settings.LowerRight, err = mandelbrot.ParsePoint(flag.Arg(3))
	misc.CheckError(err, logger, misc.Fatal)

	misc.CheckError(settings.Verify(), logger, misc.Fatal)

	logger.Debug(settings.String())
	return settings, outputFile
}
