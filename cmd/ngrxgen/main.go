package main

import (
	"os"

	"github.com/Dunsteer/ngrx-essentials-generator/internal/commands"
	"github.com/Dunsteer/ngrx-essentials-generator/output"
)

func main() {
	if err := commands.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
