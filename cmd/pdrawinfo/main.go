package main

import (
	"os"

	"github.com/thesyncim/pdrawmedia/internal/cli"
)

func main() {
	exitCode := cli.Run(os.Args, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}
