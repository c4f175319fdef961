package main

import (
	"github.com/codedpad/pad-api/app/cmd/schema"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

func listCommands() {
	println("Commands")
	println("\tschema\t\t\t- Schema administration")
	println("\thelp\t\t\t- Print the commands available")
}

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "help":
		fallthrough
	default:
		listCommands()
	}
}
