package main

import (
	"os"

	"InvestSim/cmd/investsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
