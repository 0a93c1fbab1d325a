package main

import "github.com/vibast-solutions/ms-go-switch/cmd"

func main() {
	cmd.Execute()
}
