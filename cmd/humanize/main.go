package main

import "github.com/goliatone/go-humanize-duration/internal/cli"

func main() {
	cli.Execute()
}
