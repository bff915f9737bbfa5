package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
)

// crashOutput receives the report written when a command panics.
var crashOutput io.Writer = os.Stderr

func main() {
	defer recoverPanic()
	Execute()
}

// recoverPanic reports a panic with its stack and exits with status 2.
// It only works when deferred directly.
func recoverPanic() {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("turfzone crashed", "panic", r)
	fmt.Fprintf(crashOutput, "turfzone: unexpected failure: %v\n\n%s", r, debug.Stack())
	exit(2)
}
