package main

import (
	"os"

	"github.com/Hanikakadiya/Master-Quiz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
