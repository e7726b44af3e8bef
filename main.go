// main package for the mutgate command-line tool.
// Package main is the entry point for the mutgate CLI.
package main

import "github.com/ismaelsanroman/mutgate/cmd"

func main() {
	cmd.Execute()
}
