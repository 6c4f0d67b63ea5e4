package main

import "github.com/tranvictor/contract-factori/cmd"

func main() {
	cmd.Execute()
}
