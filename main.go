package main

import "github.com/tanq16/scooper/cmd"

func main() {
	cmd.Execute()
}
