// Package driver orchestrates checker runs: loading log files, running the
// rule engine, caching results and fanning out over multiple logs.
package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/rules"
	"texlog/internal/source"
)

// Options configures one checker run.
type Options struct {
	// Rules is the active, ordered rule set.
	Rules []rules.Rule
	// WrapColumn overrides the engine's log wrap column; 0 keeps the default.
	WrapColumn int
	// MaxDiagnostics caps the bag per log file; 0 means unlimited.
	MaxDiagnostics int
	// Cache enables the result cache when non-nil.
	Cache *DiskCache
}

// Result is the outcome of checking one log file.
type Result struct {
	Path      string
	File      *source.File
	FileSet   *source.FileSet
	Bag       *diag.Bag
	FromCache bool
}

// CheckFile loads and scans a single log. Every call owns its file set,
// tracker and bag, so callers may run CheckFile concurrently over different
// paths.
func CheckFile(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	f := fs.Get(id)

	res := &Result{Path: path, File: f, FileSet: fs}

	key := cacheKey(f.Hash, opts.Rules)
	if opts.Cache != nil {
		if bag, ok := opts.Cache.Get(key); ok {
			res.Bag = bag
			res.FromCache = true
			return res, nil
		}
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	if len(f.Content) == 0 {
		// The run that should have produced this log never got anywhere.
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.IOEmptyLog,
			Message:  "log file is empty",
		})
	}
	scanOpts := logscan.Options{WrapColumn: opts.WrapColumn}
	rules.ScanFile(f, opts.Rules, scanOpts, diag.BagReporter{Bag: bag})
	res.Bag = bag

	if opts.Cache != nil {
		// Cache write failures are not worth failing the run over.
		_ = opts.Cache.Put(key, bag)
	}
	return res, nil
}

// CheckAll checks several logs with a bounded worker pool. Results come back
// in argument order. A path that cannot be read yields a result carrying an
// IOCannotRead diagnostic instead of aborting the other logs; scanning itself
// never fails on malformed content.
func CheckAll(ctx context.Context, paths []string, jobs int, opts Options, events chan<- Event) ([]*Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			emit(events, Event{Path: path, Stage: StageScanning})
			res, err := CheckFile(path, opts)
			if err != nil {
				emit(events, Event{Path: path, Stage: StageFailed, Err: err})
				results[i] = failedResult(path, err)
				return nil
			}
			results[i] = res
			emit(events, Event{Path: path, Stage: StageDone, Count: res.Bag.Len()})
			return nil
		})
	}
	err := g.Wait()
	if events != nil {
		close(events)
	}
	return results, err
}

// failedResult turns a read failure into a coded diagnostic, so the report
// and the exit status account for the bad path.
func failedResult(path string, err error) *Result {
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOCannotRead,
		Message:  err.Error(),
	})
	return &Result{Path: path, Bag: bag}
}

func emit(events chan<- Event, ev Event) {
	if events != nil {
		events <- ev
	}
}
