package main

import (
	"os"

	"github.com/wodanio-group/bos/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
