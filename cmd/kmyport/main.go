package main

import (
	"os"

	"github.com/kmyport-dev/kmyport/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
