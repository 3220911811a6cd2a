// internal/app/app.go
package app

import (
	"errors"
	"fmt"

	"g4scan-core/scanlimits"
	"g4scan/internal/fasta"
)

// ExitCode maps an error returned by RunScan/RunStream/RunDiff to a
// process exit code, following spec.md section 7's three error kinds:
// ConfigInvalid is a usage error, InputMalformed and IoFailure are
// runtime/I-O failures, anything else is an unexpected internal error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cfgErr *scanlimits.ConfigInvalid
	if errors.As(err, &cfgErr) {
		return 2
	}
	var malformed *fasta.InputMalformed
	if errors.As(err, &malformed) {
		return 3
	}
	var ioErr *fasta.IoFailure
	if errors.As(err, &ioErr) {
		return 3
	}
	return 1
}

// ErrorMessage renders err the way the CLI prints it to stderr.
func ErrorMessage(err error) string {
	return fmt.Sprintf("g4scan: %v", err)
}
