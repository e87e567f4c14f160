package main

import "github.com/ed-cetera/sudoku/cmd"

func main() {
	cmd.Execute()
}
