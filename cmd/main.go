package main

import cmd "github.com/kerbaras/pible/cmd/pible"

func main() {
	cmd.Execute()
}
