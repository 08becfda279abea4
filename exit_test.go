package checked

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exitRecorder struct {
	codes []int
	out   bytes.Buffer
}

func (r *exitRecorder) checker(opts ...ExitOption) *ExitOnError {
	base := []ExitOption{
		WithOutput(&r.out),
		WithExitFunc(func(code int) { r.codes = append(r.codes, code) }),
	}
	return NewExitOnError("tool: ", append(base, opts...)...)
}

func TestExitOnError_Success(t *testing.T) {
	t.Parallel()

	var r exitRecorder
	x := r.checker()
	x.Check(Success())
	x.Check(nil)

	assert.Empty(t, r.codes)
	assert.Zero(t, r.out.Len())
}

func TestExitOnError_Failure(t *testing.T) {
	t.Parallel()

	var r exitRecorder
	r.checker().Check(Join(New("first"), New("second")))

	assert.Equal(t, []int{ExitFailure}, r.codes)
	assert.Equal(t, "tool: first\nsecond\n", r.out.String())
}

func TestExitOnError_CodeMapperAndBanner(t *testing.T) {
	t.Parallel()

	var r exitRecorder
	x := r.checker(WithExitCode(func(p Payload) int {
		if Is[*diskError](p) {
			return 28
		}
		return 9
	}))
	x.SetBanner("other: ")
	x.Check(Fail(&diskError{device: "a"}))
	x.Check(New("plain"))

	assert.Equal(t, []int{28, 9}, r.codes)
	assert.Equal(t, "other: disk full: a\nother: plain\n", r.out.String())
}

func TestCheckValue(t *testing.T) {
	t.Parallel()

	var r exitRecorder
	x := r.checker()

	assert.Equal(t, 5, CheckValue(x, Value(5)))
	assert.Empty(t, r.codes)

	got := CheckValue(x, FailWith[int](&diskError{device: "b"}))
	assert.Zero(t, got)
	require.Len(t, r.codes, 1)
	assert.Contains(t, r.out.String(), "disk full: b")
}

func TestExitOnError_ConsumesHandle(t *testing.T) {
	var r exitRecorder
	err := New("x")
	r.checker().Check(err)
	noFatal(t, err.Release)
}

func TestExitOnError_Defaults(t *testing.T) {
	t.Parallel()

	x := NewExitOnError("b: ")
	assert.NotNil(t, x.out)
	assert.NotNil(t, x.exit)
	assert.Equal(t, ExitFailure, x.exitCode(&diskError{}))
}
