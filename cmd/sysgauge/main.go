package main

import "github.com/Dicklesworthstone/sysgauge/internal/cli"

func main() {
	cli.Execute()
}
