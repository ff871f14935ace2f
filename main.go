package main

import (
	"os"

	"github.com/iimuz/toggl-tools-go/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
