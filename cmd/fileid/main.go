package main

import (
	"os"

	"fileid-inspector/cmd/fileid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
