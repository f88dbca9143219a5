package main

import "resumemcp/cmd/resumemcp/cmd"

func main() {
	cmd.Execute()
}
