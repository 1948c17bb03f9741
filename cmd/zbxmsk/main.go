package main

import (
	"github.com/ctlops/zbxmsk/cmd/zbxmsk/commands"
)

func main() {
	commands.Execute()
}
