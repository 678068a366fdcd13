package main

import "renamefiles/cmd"

func main() {
	cmd.Execute()
}
