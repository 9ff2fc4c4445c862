package main

import "github.com/cardtools/cardex/cmd"

func main() {
	cmd.Execute()
}
