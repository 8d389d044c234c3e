package main

import "zavagen/cmd"

func main() {
	cmd.Execute()
}
