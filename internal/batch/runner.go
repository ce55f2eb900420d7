// Package batch applies a version change to many files with bounded
// concurrency and per-file failure isolation.
package batch

import (
	"context"
	"errors"
	"sync"

	"github.com/fgm/verbump/internal/core"
	"github.com/fgm/verbump/internal/semver"
	"github.com/fgm/verbump/internal/updater"
)

// DefaultConcurrency is the maximum number of file changes in flight at
// any time.
const DefaultConcurrency = 5

// ErrNoVersion is returned when a batch is invoked without a target
// version. The whole batch fails before any file is touched.
var ErrNoVersion = errors.New("no target version provided")

// Runner sequences per-file change operations across a set of files.
type Runner struct {
	fs          core.FileSystem
	concurrency int
	onResult    func(path string, err error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency overrides the in-flight cap. Values below 1 keep the
// default.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.concurrency = n
		}
	}
}

// WithResultFunc registers a callback invoked as each file finishes,
// with a nil error on success. Callbacks run serially.
func WithResultFunc(fn func(path string, err error)) Option {
	return func(r *Runner) {
		r.onResult = fn
	}
}

// NewRunner creates a Runner backed by the given filesystem.
func NewRunner(fs core.FileSystem, opts ...Option) *Runner {
	r := &Runner{
		fs:          fs,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ChangeFiles applies version to every file, running at most the
// configured number of changes concurrently. As each in-flight change
// completes the next queued file is admitted. Per-file failures never
// abort the batch; the paths of failed files are returned in completion
// order once every file has finished.
//
// An empty version is a precondition failure: ErrNoVersion is returned
// and no file is touched.
func (r *Runner) ChangeFiles(ctx context.Context, files []string, version string) ([]string, error) {
	if version == "" {
		return nil, ErrNoVersion
	}

	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	var mu sync.Mutex
	var failed []string

	for _, path := range files {
		sem <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			u := updater.New(r.fs, path, updater.Options{
				Version: version,
				Cmd:     semver.CmdSet,
			})
			err := u.Change(ctx)

			mu.Lock()
			if err != nil {
				failed = append(failed, path)
			}
			if r.onResult != nil {
				r.onResult(path, err)
			}
			mu.Unlock()
		}(path)
	}

	wg.Wait()
	return failed, nil
}
