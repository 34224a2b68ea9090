package main

import "github.com/activerest/cli/cmd/arc"

func main() {
	arc.Main()
}
