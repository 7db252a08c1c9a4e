// Package main prints a single greeting.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/greeter-api/internal/domain"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(2)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hello", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", "World", "who to greet")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, err := fmt.Fprintln(stdout, domain.GreetingMessage(*name))
	return err
}
