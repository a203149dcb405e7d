package main

import "github.com/agent-platform/pdfcost/cmd"

func main() {
	cmd.Execute()
}
