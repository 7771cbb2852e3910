package main

import (
	"github.com/shavecost/shavecost/cmd"
)

func main() {
	cmd.Execute()
}
