// Package main is the entry point for the thintasks CLI.
package main

import "thintasks.dev/pkg/thintasks/cmd"

func main() {
	cmd.Execute()
}
