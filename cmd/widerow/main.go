package main

import "github.com/widerow/widerow/internal/cli"

func main() {
	cli.Execute()
}
