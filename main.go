package main

import "github.com/gosimp/topopt/cmd"

func main() {
	cmd.Execute()
}
