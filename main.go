package main

import (
	"github.com/JYLeeSci/fishprobes/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
