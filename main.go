package main

import "doccov/internal/cli"

func main() {
	cli.Execute()
}
