package main

import "github.com/gaurav-prasanna/urlkit/cmd"

func main() {
	cmd.Execute()
}
