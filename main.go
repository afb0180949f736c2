package main

import "github.com/theirongolddev/foodinme/cmd"

func main() {
	cmd.Execute()
}
