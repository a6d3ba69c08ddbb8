package main

import "github.com/facturanet/teif/pkg/cli"

func main() {
	cli.Execute()
}
