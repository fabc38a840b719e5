package main

import (
	"os"

	"github.com/snekfx/testgo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
