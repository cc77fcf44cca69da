package main

import (
	"os"

	"github.com/aemreaydin/olox/cmd/olox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
