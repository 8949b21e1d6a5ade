package main

import (
	"fmt"
	"os"

	"medigrip/cmd"
	"medigrip/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
