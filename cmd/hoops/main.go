package main

import "github.com/mcoot/hoopsclient/internal/cli"

func main() {
	cli.Execute()
}
