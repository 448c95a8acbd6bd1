package main

import "github.com/firegate-ai/firegate/cmd"

func main() {
	cmd.Execute()
}
