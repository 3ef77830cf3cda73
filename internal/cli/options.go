// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"fizzbuzz/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: the counting game over 1..99, printed twice

License: MIT
Version: %s

Multiples of 3 print "fizz", multiples of 5 "buzz", multiples of both
"fizzbuzz", and every other index its own number. A run prints the
sequence once numbered from 1, then again numbered from 0.

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		// Printing is the app's job; parsing only reports the mode.
		return opt, flag.ErrHelp
	}

	// Validation
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected positional argument %q", fs.Arg(0))
	}
	return opt, nil
}
