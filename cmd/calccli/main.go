package main

import (
	"fmt"
	"os"

	"calccli/internal/cli"
	"calccli/internal/infrastructure"
)

func main() {
	err := cli.Execute()
	infrastructure.CloseLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
