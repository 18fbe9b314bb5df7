package main

import "github.com/glotscan/glotscan/cmd/glotscan/cmd"

func main() {
	cmd.Execute()
}
