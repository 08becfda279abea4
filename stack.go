// stack.go — origin stacks for failures created in diagnostic builds.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames so inlined frames resolve.
//   - Capture only where a report may need it: the creation site of a failing
//     handle, so a drop report points at the code that made the failure.
//   - Bounded depth; nothing is captured for success handles or in release
//     builds.
package checked

import (
	"runtime"
)

// Frame is a single call site in a stack trace.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// originDepth bounds origin captures. Drop reports only need the nearest
// frames of the creating code.
const originDepth = 16

// captureStack captures up to maxDepth frames, skipping 'skip' frames above
// its caller. skip == 0 starts at the caller of captureStack.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = originDepth
	}

	// +2: runtime.Callers and captureStack itself.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// Top returns the most recent frame, or the zero Frame for an empty stack.
func (s Stack) Top() Frame {
	if len(s) == 0 {
		return Frame{}
	}
	return s[0]
}
