package main

import "github.com/nfrund/sculpt/cmd/fittrack-cli/cmd"

func main() {
	cmd.Execute()
}
