package main

import "covsim/cmd"

func main() {
	cmd.Execute()
}
