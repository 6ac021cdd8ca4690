package main

import "pair-compare/cmd"

func main() {
	cmd.Execute()
}
