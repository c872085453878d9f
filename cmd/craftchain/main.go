package main

import (
	"github.com/andrescamacho/craftchain-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
