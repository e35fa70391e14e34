package main

import "github.com/gaurav-prasanna/wikimd/cmd"

func main() {
	cmd.Execute()
}
