package main

import "attendctl/cmd"

func main() {
	cmd.Execute()
}
