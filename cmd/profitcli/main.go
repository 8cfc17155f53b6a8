// Package main es el punto de entrada de profitcli.
package main

import (
	"os"

	"github.com/jhoicas/Rentabilidad-api/cmd/profitcli/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
