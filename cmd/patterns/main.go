package main

import (
	"os"

	"github.com/Alan-Rodz/DesignPatterns/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
