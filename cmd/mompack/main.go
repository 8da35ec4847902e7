// Package main provides the mompack CLI, a command-line editor for
// .xcdatamodeld schema packages.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// systemError marks a failure of the machine (disk, database) rather
// than of the invocation. Everything else exits as a user error.
type systemError struct {
	err error
}

func (e systemError) Error() string { return e.err.Error() }

func (e systemError) Unwrap() error { return e.err }

// sysErrf wraps a failure so it exits with the system error code.
func sysErrf(format string, args ...any) error {
	return systemError{err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	var sys systemError
	if errors.As(err, &sys) {
		return exitSysError
	}
	return exitUserError
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
