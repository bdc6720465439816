package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Makepad-fr/staff/internal/ui"
)

// Options carry the process streams; nil fields default to os.Stdout/os.Stderr.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

// usageError marks bad invocations (exit code 2).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}

	root := NewRootCmd(opt)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	ui.Fail(opt.Stderr, err.Error())
	if isUsage(err) {
		fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("Hint: run `staff --help`"))
		return 2
	}
	return 1
}

func isUsage(err error) bool {
	var ue usageError
	return errors.As(err, &ue)
}
