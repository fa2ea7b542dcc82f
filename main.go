package main

import "github.com/Rorical/RoriRecipe/cmd"

func main() {
	cmd.Execute()
}
