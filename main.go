package main

import "github.com/alexiusacademia/arcgeom/cmd"

func main() {
	cmd.Execute()
}
