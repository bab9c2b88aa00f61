package main

import (
	"fmt"
	"os"

	"github.com/rein-hosz/GitSwitch/cmd"
	"github.com/rein-hosz/GitSwitch/internal/apperr"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperr.ExitCode(err))
	}
}
