// Command pathcheck verifies that every path argument is a readable regular
// file within a size limit, printing "<path>\t<size>" for each one that is.
//
// Exit status: 0 when every path passed, 2 when only missing paths failed,
// 3 when any path was over the size limit, 64 for usage errors, 1 otherwise.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xgx-io/xgx-checked"
	"github.com/xgx-io/xgx-checked/internal/config"
	"github.com/xgx-io/xgx-checked/internal/logger"
	"github.com/xgx-io/xgx-checked/internal/probe"
)

const (
	exitMissing  = 2
	exitTooLarge = 3
	exitUsage    = 64
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	checked.Must(logger.Init(stderr, logger.DefaultLevel))

	status := 0
	exit := checked.NewExitOnError("pathcheck: ",
		checked.WithOutput(stderr),
		checked.WithExitCode(func(p checked.Payload) int {
			logFailures(p)
			return exitCode(p)
		}),
		checked.WithExitFunc(func(code int) { status = code }),
	)

	cfg := checked.CheckValue(exit, config.Load(args))
	if status != 0 {
		return status
	}
	exit.Check(logger.Init(stderr, cfg.LogLevel))
	if status != 0 {
		return status
	}
	logger.Debug().Strs("paths", cfg.Paths).Int64("max_size", cfg.MaxSize).Msg("checking paths")

	infos, err := probe.CheckAll(cfg.Paths, cfg.MaxSize)
	for _, info := range infos {
		_, _ = fmt.Fprintf(stdout, "%s\t%d\n", info.Path, info.Size)
	}

	if cfg.AllowMissing {
		err = checked.Handle(err, checked.OnVoid(func(e *probe.MissingError) {
			logger.Warn().Str("path", e.Path).Msg("skipping missing path")
		}))
	}
	exit.Check(err)
	return status
}

// logFailures writes one log event per unresolved failure.
func logFailures(p checked.Payload) {
	for _, leaf := range checked.Flatten(p) {
		logger.Failure(leaf).Msg("unresolved failure")
	}
}

// exitCode maps the remaining failures to the documented exit status.
func exitCode(p checked.Payload) int {
	leaves := checked.Flatten(p)
	missing, tooLarge := 0, false
	for _, leaf := range leaves {
		switch {
		case checked.Is[*config.Error](leaf):
			return exitUsage
		case checked.Is[*probe.TooLargeError](leaf):
			tooLarge = true
		case checked.Is[*probe.MissingError](leaf):
			missing++
		}
	}
	switch {
	case tooLarge:
		return exitTooLarge
	case missing == len(leaves):
		return exitMissing
	}
	return checked.ExitFailure
}
