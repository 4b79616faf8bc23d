// Package main is the entry point for the schema review service.
package main

import (
	"sqlrecsys/server/cmd"
)

func main() {
	cmd.Execute()
}
