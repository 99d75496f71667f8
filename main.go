package main

import "github.com/strrl/rofi-recent/cmd/rofi-recent/commands"

func main() {
	commands.Execute()
}
