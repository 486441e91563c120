// Package main is the entry point for the sccremover CLI.
package main

import "sccremover.dev/pkg/sccremover/cmd"

func main() {
	cmd.Execute()
}
