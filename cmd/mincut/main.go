package main

import "github.com/katalvlaran/mincut/cmd/mincut/cmd"

func main() {
	cmd.Execute()
}
