// predicates_test.go — non-consuming queries.
package checked

import (
	"syscall"
	"testing"
)

func TestIs(t *testing.T) {
	t.Parallel()

	to := &timeoutError{netError: netError{host: "h"}, after: 1}
	if !Is[*timeoutError](to) || !Is[*netError](to) {
		t.Fatalf("a timeout is-a timeout and is-a net failure")
	}
	if Is[*diskError](to) {
		t.Fatalf("a timeout is not a disk failure")
	}
	if Is[*netError](nil) {
		t.Fatalf("Is(nil) must be false")
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	err := Join(New("a"), WithFile("f", Fail(&timeoutError{netError: netError{host: "h"}})))
	defer Consume(err)

	if !Contains(err, kindTimeout()) || !Contains(err, kindNet()) {
		t.Fatalf("Contains should see kinds nested in list members")
	}
	if Contains(err, kindDisk()) {
		t.Fatalf("Contains reported an absent kind")
	}
	ok := Success()
	if Contains(nil, BaseKind()) || Contains(ok, BaseKind()) {
		t.Fatalf("success contains nothing")
	}
	_ = ok.Failed()
}

func TestCodeOfAndCount(t *testing.T) {
	t.Parallel()

	single := Fail(&diskError{device: "a"})
	defer Consume(single)
	if CodeOf(single) != Errno(syscall.ENOSPC) || Count(single) != 1 {
		t.Fatalf("CodeOf/Count of single failure")
	}

	many := Join(New("a"), New("b"), New("c"))
	defer Consume(many)
	if Count(many) != 3 {
		t.Fatalf("Count(list) = %d", Count(many))
	}

	if !CodeOf(nil).IsZero() || Count(nil) != 0 {
		t.Fatalf("nil handle has no code and no failures")
	}
}

// Queries must not count as handling.
func TestPredicates_DoNotCheck(t *testing.T) {
	requireAudit(t)

	err := Fail(&diskError{device: "a"})
	_ = Contains(err, kindDisk())
	_ = CodeOf(err)
	_ = Count(err)
	expectFatal(t, err.Release)
}
