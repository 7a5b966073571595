package main

import "github.com/neo/passmeter_backend/cmd"

func main() {
	cmd.Execute()
}
