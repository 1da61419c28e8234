package main

import "github.com/JA3G3R/modescan/cmd"

func main() {
	cmd.Execute()
}
