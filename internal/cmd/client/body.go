package client

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// resolveBody applies the body precedence: --file, then --body, then piped
// stdin. An interactive terminal never blocks waiting for input; the body
// resolves to the empty string instead.
func resolveBody(bodyFlag, filePath string, stdin io.Reader) (string, error) {
	if filePath != "" {
		b, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read body file: %w", err)
		}
		return string(b), nil
	}
	if bodyFlag != "" {
		return bodyFlag, nil
	}
	if interactive(stdin) {
		return "", nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

// interactive reports whether the reader is a terminal. Buffers and pipes
// are not, so tests and shell pipelines both take the read path.
func interactive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
