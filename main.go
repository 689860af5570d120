package main

import "github.com/brightpath-ai/website/cmd"

func main() {
	cmd.Execute()
}
