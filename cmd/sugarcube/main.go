package main

import (
	"github.com/vizigr0u/sugarcube/pkg/cli"
)

func main() {
	cli.Execute()
}
