// Package cli holds what the assetc subcommands share: argument parsing and
// the mapping of failures to exit codes.
package cli

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/clktmr/assetc/asset"
)

const (
	ExitOK = iota
	ExitUsage
	ExitDecode
	ExitSchema
	ExitIO
	ExitFormat
	ExitInternal
)

// ErrUsage reports invalid command line arguments. Usage has already been
// printed when it's returned unwrapped.
var ErrUsage = errors.New("invalid arguments")

// Parse parses args with flags, allowing flags after positional arguments,
// and returns the positional arguments.
func Parse(flags *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, ErrUsage
		}
		rest := flags.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// Parse stops at the first positional argument or right after a
		// "--" terminator.
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	}
	switch asset.KindOf(err) {
	case asset.KindDecode:
		return ExitDecode
	case asset.KindSchema:
		return ExitSchema
	case asset.KindIO:
		return ExitIO
	case asset.KindFormat:
		return ExitFormat
	}
	return ExitInternal
}

// Exit terminates the process with the exit status for err after logging it.
// It returns if err is nil.
func Exit(err error) {
	if err == nil {
		return
	}
	if err != ErrUsage && !errors.Is(err, flag.ErrHelp) {
		log.Println(err)
	}
	os.Exit(ExitCode(err))
}
