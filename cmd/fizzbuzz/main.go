// cmd/fizzbuzz/main.go
package main

import (
	"os"

	"fizzbuzz/internal/app"
)

func main() {
	code := app.Run(os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
