package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/clktmr/assetc/tools/descriptor"
	"github.com/clktmr/assetc/tools/glyphs"
	"github.com/clktmr/assetc/tools/image"
)

type command struct {
	name, short string
	main        func(args []string)
}

var commands = []command{
	{"image", "convert an image to RGBA8888 data and an image descriptor", image.Main},
	{"glyphs", "generate glyph name macros from a YAML overrides file", glyphs.Main},
	{"descriptor", "write the image_descriptor.h header", descriptor.Main},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "assetc compiles UI assets into C headers.\n\nUsage:\n\n\t%s <command> [arguments]\n\nThe commands are:\n\n", prog)
	width := 0
	for _, c := range commands {
		width = max(width, len(c.name))
	}
	for _, c := range commands {
		fmt.Fprintf(w, "\t%-*s %s\n", width, c.name, c.short)
	}
	fmt.Fprintf(w, "\nRun '%s <command> -h' for the flags of a command.\n", prog)
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = func() { printUsage(flag.CommandLine.Output(), os.Args[0]) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	c, ok := lookup(flag.Arg(0))
	if !ok {
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
	c.main(flag.Args())
}
