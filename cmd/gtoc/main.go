package main

import "github.com/Alrightsc/gtnh-flow/pkg/cli"

func main() {
	cli.Execute()
}
