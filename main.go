package main

import "github.com/carson-networks/spaces-server/cmd"

func main() {
	cmd.Execute()
}
