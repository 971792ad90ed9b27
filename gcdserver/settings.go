package gcdserver

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	Address string
}

func (s *Settings) String() string {
	output := "\nGcd server settings\n"
	output += fmt.Sprintf("Address: %s\n", s.Address)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("GcdServerSettings", bslogger.Normal, nil)

	if s.Address == "" {
		s.Address = "localhost:3000"
	}
	return nil
}
