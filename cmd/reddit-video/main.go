package main

import "github.com/darccyy/reddit-video/internal/cli"

func main() {
	cli.Main()
}
