package main

import "github.com/tanq16/rawget/cmd"

func main() {
	cmd.Execute()
}
