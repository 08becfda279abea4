//go:build release

// audit_release.go — release builds keep the checked-state machine but do not
// audit drops or record origins.
package checked

import (
	"runtime"
)

const auditEnabled = false

func track[T any](_ *T, _ *errState, _ int) runtime.Cleanup { return runtime.Cleanup{} }

func untrack(runtime.Cleanup) {}

func auditDropped(*errState) {}
