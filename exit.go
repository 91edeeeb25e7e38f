package cliargs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/anacrolix/missinggo"
)

// Fatal prints err, and the usage attached to it if any, to stderr and exits. The exit status is
// 2 for argument errors and 1 otherwise.
func Fatal(err error) {
	os.Exit(report(os.Stderr, filepath.Base(os.Args[0]), err))
}

// Writes the diagnostic for err and returns the exit status it warrants.
func report(w io.Writer, program string, err error) int {
	fmt.Fprint(w, missinggo.Unchomp(fmt.Sprintf("%s: %s", program, err)))
	if ReasonOf(err) != 0 {
		return 2
	}
	return 1
}
