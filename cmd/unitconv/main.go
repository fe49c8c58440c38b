package main

import "github.com/govalues/measure/internal/cli"

func main() {
	cli.Execute()
}
