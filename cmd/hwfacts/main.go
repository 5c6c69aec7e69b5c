package main

import (
	"github.com/NVIDIA/hwfacts/pkg/cli"
)

func main() {
	cli.Execute()
}
