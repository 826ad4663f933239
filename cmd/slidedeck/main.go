package main

import "slidedeck/cmd/slidedeck/cmd"

func main() {
	cmd.Execute()
}
