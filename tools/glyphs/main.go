package glyphs

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/clktmr/assetc/glyphgen"
	"github.com/clktmr/assetc/header"
	"github.com/clktmr/assetc/tools/internal/cli"
)

const usageString = `Glyph overrides to C header converter.

Defines a GLYPH_<name> string macro for every override in a YAML file:

	overrides:
	  - target: 0x20
	    name: SPACE

Usage: %s [flags] <overrides> <header>

`

var stdout io.Writer = os.Stdout

// Run executes the glyphs command, args[0] being the command name.
func Run(args []string) error {
	flags := flag.NewFlagSet("glyphs", flag.ContinueOnError)
	formatter := flags.String("formatter", header.DefaultFormatter, "command to format the header in place, empty to disable")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageString, "glyphs")
		flags.PrintDefaults()
	}

	files, err := cli.Parse(flags, args[1:])
	if err != nil {
		return err
	}
	if len(files) != 2 {
		flags.Usage()
		return cli.ErrUsage
	}
	infile, outfile := files[0], files[1]

	f, err := header.ParseCommand(*formatter)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	overrides, err := glyphgen.Load(infile)
	if err != nil {
		return err
	}
	table, err := glyphgen.NewTable(overrides)
	if err != nil {
		return err
	}

	if err := header.Emit(outfile, glyphgen.Generate(table), f); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Wrote", outfile)
	return nil
}

func Main(args []string) {
	cli.Exit(Run(args))
}
