package main

import "chartcursor/internal/cli"

func main() {
	cli.Execute()
}
