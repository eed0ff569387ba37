package main

import (
	"fmt"
	"os"

	"github.com/arcanaland/diced/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERR] -> %v.\n", err)
		os.Exit(1)
	}
}
