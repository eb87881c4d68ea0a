package main

import "github.com/chriscorrea/madlib/internal/cmd"

func main() {
	cmd.Execute()
}
