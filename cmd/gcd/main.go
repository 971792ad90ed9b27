package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/gcd"
)

func main() {
	logger := bslogger.NewLogger("Gcd", bslogger.Normal, nil)

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s NUMBER...\n", os.Args[0])
		os.Exit(1)
	}

	numbers := make([]uint64, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		number, err := strconv.ParseUint(arg, 10, 64)
		if err != nil || number == 0 {
			logger.Fatalf("%q is not a positive number", arg)
		}
		numbers = append(numbers, number)
	}

	fmt.Printf("The greatest common divisor of %v is %d\n", numbers, gcd.Fold(numbers))
}
