package header

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/clktmr/assetc/asset"
)

// DefaultFormatter is the command line used to format generated headers in
// place.
const DefaultFormatter = "clang-format -i"

// Formatter post-processes a header file that has already been written.
type Formatter interface {
	Format(path string) error
}

// Command is an external formatter. The path of the file to format is
// appended as last argument.
type Command []string

// ParseCommand splits a shell style command line into a Command. An empty
// line yields a nil Formatter, which disables formatting.
func ParseCommand(line string) (Formatter, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("formatter %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return Command(args), nil
}

func (c Command) Format(path string) error {
	if len(c) == 0 {
		return asset.Errorf(asset.KindFormat, path, "no formatter command")
	}
	args := append(c[1:len(c):len(c)], path)
	cmd := exec.Command(c[0], args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if msg := bytes.TrimSpace(out.Bytes()); len(msg) > 0 {
		err = fmt.Errorf("%s: %w: %s", c[0], err, msg)
	} else {
		err = fmt.Errorf("%s: %w", c[0], err)
	}
	return asset.Wrap(asset.KindFormat, path, err)
}
