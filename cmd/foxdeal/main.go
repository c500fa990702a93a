// Package main is the entry point for the foxdeal server.
package main

import (
	"os"

	"github.com/shrutirout/foxdeal/cmd/foxdeal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
