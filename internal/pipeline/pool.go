package pipeline

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rtron-go/rtron/internal/citygml"
	"github.com/rtron-go/rtron/internal/config"
	"github.com/rtron-go/rtron/internal/report"
)

// FileResult is one input file's outcome from a Pool run.
type FileResult struct {
	Path     string
	Messages report.MessageList
	Err      error
}

// Pool runs Run over many input files with a bounded number of concurrent
// workers. Each worker builds its own opendrive/roadspaces/citygml models
// from scratch for every file it picks up — no cache or mutable state is
// shared across goroutines (§5 "no shared caches or global mutable
// state"), so Workers only bounds fan-out, never correctness.
type Pool struct {
	Workers int
	Writer  citygml.Writer
	OutDir  string
	Config  config.Options
	Logger  *logrus.Logger
}

// Run processes every path in paths, at most p.Workers at a time, and
// returns one FileResult per input in the order given. ctx cancellation is
// cooperative: in-flight files finish their current phase, observe ctx.Done
// and stop there (see Run's checkCancelled calls), and queued-but-not-yet-
// started files are skipped with a Cancelled result rather than started at
// all.
func (p *Pool) Run(ctx context.Context, paths []string) []FileResult {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]FileResult, len(paths))
	jobs := make(chan int, len(paths))
	for i := range paths {
		jobs <- i
	}
	close(jobs)

	logger := p.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					results[i] = FileResult{
						Path:     paths[i],
						Messages: report.MessageList{}.Reported(CodeCancelled, ctx.Err().Error(), report.SourceID{}, report.SeverityInfo),
					}
					continue
				default:
				}

				entry := logger.WithField("worker", w)
				msgs, err := Run(ctx, paths[i], p.Config, p.Writer, p.OutDir, entry)
				results[i] = FileResult{Path: paths[i], Messages: msgs, Err: err}
			}
		}()
	}
	wg.Wait()

	return results
}
