package rop

import (
	"fmt"
	"os"
)

// AbortExitCode is the exit status used when a contract is violated.
const AbortExitCode = 134

const (
	msgUnwrapOnErr = "unwrap called on Result::Err()"
	msgUnwrapErrOk = "unwrap_err called on Result::Ok()"
)

// Violate reports a contract violation and terminates the process. Deferred
// calls do not run and the exit cannot be recovered.
func Violate(msg string) {
	violate(msg)
}

func violate(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(AbortExitCode)
}

func violatef(format string, args ...any) {
	violate(fmt.Sprintf(format, args...))
}
