// gocross - CLI application for solving and replaying the bottom cross of a 3x3 cube.
package main

import (
	"github.com/SeamusWaldron/gocube_cross/internal/cli"
)

func main() {
	cli.Execute()
}
