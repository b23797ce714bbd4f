package main

import cmd "github.com/rohmanhakim/session-archiver/internal/cli"

func main() {
	cmd.Execute()
}
