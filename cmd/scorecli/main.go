package main

import "github.com/scrng/scoreboard-web/internal/cli"

func main() {
	cli.Execute()
}
