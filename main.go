package main

import "github.com/napkincalc/napkin/cmd"

func main() {
	cmd.Execute()
}
