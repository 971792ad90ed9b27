package main

import (
	"flag"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/gcdserver"
	"mandelbrot/misc"
)

var address string

func main() {
	logger := bslogger.NewLogger("GcdServer", bslogger.Normal, nil)

	flag.StringVar(&address, "address", "", "Address to serve the form on (default localhost:3000)")
	flag.Parse()

	server := gcdserver.NewServer(gcdserver.Settings{Address: address})
	misc.CheckError(server.Run(), logger, misc.Fatal)
}
