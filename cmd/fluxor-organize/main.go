package main

import (
	"os"

	"github.com/viant/fluxor-organize/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
