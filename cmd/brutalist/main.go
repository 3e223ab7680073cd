package main

import "github.com/sklarow/brutalist-color-pallete/internal/cli"

func main() {
	cli.Execute()
}
