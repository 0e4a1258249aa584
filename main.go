package main

import "altered-knowledge/cmd"

func main() {
	cmd.Execute()
}
