package main

import "github.com/LegacyCodeHQ/reactor/cmd"

func main() {
	cmd.Execute()
}
