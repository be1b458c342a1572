package main

import (
	"github.com/0xERR0R/regdomain/cmd"
)

func main() {
	cmd.Execute()
}
