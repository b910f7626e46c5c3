// Package main is the entry point for the skeletor CLI.
package main

import "skeletor.dev/pkg/skeletor/cmd"

func main() {
	cmd.Execute()
}
