package main

import "waifulist/cmd"

func main() {
	cmd.Execute()
}
