// Package main provides the kinet command line tool.
package main

import (
	"os"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
