package main

import "github.com/questmaster/questmaster/cmd"

func main() {
	cmd.Execute()
}
