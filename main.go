package main

import (
	"os"

	"github.com/thimo234/ha-energy-chard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
