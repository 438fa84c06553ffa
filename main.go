package main

import "github.com/Mohsinsiddi/escan-mcp/cmd"

func main() {
	cmd.Execute()
}
