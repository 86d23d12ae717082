package main

import "github.com/renjen/cse132a-hw3/cmd"

func main() {
	cmd.Execute()
}
