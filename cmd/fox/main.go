// Package main is the entry point for the fox CLI client.
package main

import (
	"github.com/shrutirout/foxdeal/cmd/fox/cmd"
)

func main() {
	cmd.Execute()
}
