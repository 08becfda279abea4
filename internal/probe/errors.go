package probe

import (
	"io/fs"
	"strconv"
	"syscall"

	"github.com/xgx-io/xgx-checked"
)

var (
	kindPath       = checked.LazyKind("path", nil)
	kindMissing    = checked.LazyKind("missing", kindPath)
	kindDenied     = checked.LazyKind("denied", kindPath)
	kindTooLarge   = checked.LazyKind("too-large", kindPath)
	kindNotRegular = checked.LazyKind("not-regular", kindPath)
)

// PathError is the parent kind of every probe failure. Handlers declared for
// *PathError see all of them.
type PathError struct {
	checked.NoCode
	Path string
}

func (*PathError) Kind() *checked.Kind { return kindPath() }

func (e *PathError) Error() string { return e.Path + ": unusable path" }

// asPath lets handlers for *PathError view a child kind.
func asPath(e *PathError, target any) bool {
	if t, ok := target.(**PathError); ok {
		*t = e
		return true
	}
	return false
}

// MissingError reports a path that does not exist.
type MissingError struct{ PathError }

func (*MissingError) Kind() *checked.Kind { return kindMissing() }

func (e *MissingError) Error() string { return e.Path + ": does not exist" }

func (*MissingError) ErrorCode() checked.ErrorCode { return checked.Errno(syscall.ENOENT) }

func (e *MissingError) As(target any) bool { return asPath(&e.PathError, target) }

// DeniedError reports a path that exists but cannot be read.
type DeniedError struct{ PathError }

func (*DeniedError) Kind() *checked.Kind { return kindDenied() }

func (e *DeniedError) Error() string { return e.Path + ": permission denied" }

func (*DeniedError) ErrorCode() checked.ErrorCode { return checked.Errno(syscall.EACCES) }

func (e *DeniedError) As(target any) bool { return asPath(&e.PathError, target) }

// TooLargeError reports a file above the configured size limit.
type TooLargeError struct {
	PathError
	Size  int64
	Limit int64
}

func (*TooLargeError) Kind() *checked.Kind { return kindTooLarge() }

func (e *TooLargeError) Error() string {
	return e.Path + ": " + strconv.FormatInt(e.Size, 10) + " bytes exceeds limit of " +
		strconv.FormatInt(e.Limit, 10)
}

func (*TooLargeError) ErrorCode() checked.ErrorCode { return checked.Errno(syscall.EFBIG) }

func (e *TooLargeError) As(target any) bool { return asPath(&e.PathError, target) }

// Context exposes the sizes as structured fields.
func (e *TooLargeError) Context() map[string]any {
	return map[string]any{"path": e.Path, "size": e.Size, "limit": e.Limit}
}

// NotRegularError reports a directory, device, socket or similar.
type NotRegularError struct {
	PathError
	Mode fs.FileMode
}

func (*NotRegularError) Kind() *checked.Kind { return kindNotRegular() }

func (e *NotRegularError) Error() string {
	return e.Path + ": not a regular file (" + e.Mode.Type().String() + ")"
}

func (e *NotRegularError) As(target any) bool { return asPath(&e.PathError, target) }
