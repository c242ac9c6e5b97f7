package main

import (
	"os"

	"github.com/anyproto/any-keys/cmd/anykeys/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
