package main

import (
	"os"

	"github.com/larynjahor/pushpop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
