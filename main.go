package main

import (
	"os"

	"repoclone/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
