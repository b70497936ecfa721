package main

import "github.com/cjrsolutions/cjrweb/cmd/cjr-cli/cmd"

func main() {
	cmd.Execute()
}
