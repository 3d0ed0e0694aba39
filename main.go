package main

import "github.com/kozaktomas/cube-scanner/cmd"

func main() {
	cmd.Execute()
}
