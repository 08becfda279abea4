package probe

import (
	"errors"
	"io/fs"
	"os"

	"github.com/xgx-io/xgx-checked"
)

// Info describes a path that passed every check.
type Info struct {
	Path string
	Size int64
	Mode fs.FileMode
}

// Probe checks that path is an existing, readable regular file no larger than
// limit bytes (limit <= 0 disables the size check). OS failures other than
// "missing" and "denied" come back as the OS error number annotated with the
// path.
func Probe(path string, limit int64) *checked.Expected[Info] {
	fi, err := os.Stat(path)
	if err != nil {
		return checked.FromError[Info](classify(path, err))
	}
	if !fi.Mode().IsRegular() {
		return checked.FailWith[Info](&NotRegularError{PathError: PathError{Path: path}, Mode: fi.Mode()})
	}
	if limit > 0 && fi.Size() > limit {
		return checked.FailWith[Info](&TooLargeError{PathError: PathError{Path: path}, Size: fi.Size(), Limit: limit})
	}

	f, err := os.Open(path)
	if err != nil {
		return checked.FromError[Info](classify(path, err))
	}
	_ = f.Close()

	return checked.Value(Info{Path: path, Size: fi.Size(), Mode: fi.Mode()})
}

func classify(path string, err error) *checked.Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return checked.Fail(&MissingError{PathError{Path: path}})
	case errors.Is(err, fs.ErrPermission):
		return checked.Fail(&DeniedError{PathError{Path: path}})
	default:
		return checked.WithFile(path, checked.FromSyscall(err))
	}
}

// CheckAll probes every path. It returns the infos of the paths that passed
// and every failure joined, in argument order.
func CheckAll(paths []string, limit int64) ([]Info, *checked.Error) {
	var (
		infos []Info
		errs  []*checked.Error
	)
	for _, p := range paths {
		x := Probe(p, limit)
		if x.Ok() {
			infos = append(infos, x.Get())
			continue
		}
		errs = append(errs, x.TakeError())
	}
	return infos, checked.Join(errs...)
}
