package main

import (
	"os"

	"github.com/msto63/strx/cmd/strx/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
