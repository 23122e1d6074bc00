package main

import "github.com/they4kman/bombsquare/cmd"

func main() {
	cmd.Execute()
}
