package main

import (
	"os"

	"github.com/AlexZinkM/share-a-care/cmd/shareacare/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
