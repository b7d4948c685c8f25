package main

import "tahvelcheck/cmd"

func main() {
	cmd.Execute()
}
