package main

import "github.com/naka-gawa/github-language-stats/cmd"

func main() {
	cmd.Execute()
}
