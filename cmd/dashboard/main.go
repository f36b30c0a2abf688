package main

import "anthropic-dashboard/internal/cli"

func main() {
	cli.Execute()
}
