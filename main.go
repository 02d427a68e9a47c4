package main

import "github.com/rybkr/npuzzle/cmd"

func main() {
	cmd.Execute()
}
