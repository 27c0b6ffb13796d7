package main

import (
	"github.com/echoenvoy/sudoku-solver/internal/cli"
)

func main() {
	cli.Execute()
}
