package main

import "github.com/MaroIng01/portfolio/internal/cli"

func main() {
	cli.Execute()
}
