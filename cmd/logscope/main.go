package main

import (
	_ "time/tzdata"

	"github.com/livp123/logscope/cmd/logscope/commands"
)

func main() {
	commands.Execute()
}
