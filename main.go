package main

import (
	"github/chapool/go-keyring/cmd"
)

func main() {
	cmd.Execute()
}
