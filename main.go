package main

import (
	"fmt"
	"os"

	"restaurant-menu/cmd"
	"restaurant-menu/internal/apperr"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperr.Describe(err))
		os.Exit(1)
	}
}
