package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/coregx/refa/internal/runner"
)

func main() {
	opts := runner.ParseFlags()

	r, err := runner.New(opts)
	if err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
	if err := r.Run(); err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
}
