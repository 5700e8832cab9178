package main

import "github.com/dotcommander/projroot/cmd"

func main() {
	cmd.Execute()
}
