package main

import "github.com/m-lyon/porcaro/cmd"

func main() {
	cmd.Execute()
}
