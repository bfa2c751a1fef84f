package main

import "promptvault/cmd/promptvault-cli/cmd"

func main() {
	cmd.Execute()
}
