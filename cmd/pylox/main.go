package main

import (
	"os"

	"github.com/BaLiKfromUA/pylox/cmd/pylox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
