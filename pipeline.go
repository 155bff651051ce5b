package assetforge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/assetforge/codec"
	"github.com/bodgit/assetforge/manifest"
)

func (a *AssetForge) findImages(ctx context.Context, base, skip string) (<-chan string, <-chan error, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, errors.New("not a directory")
	}

	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, but not the base itself
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Don't feed our own output back in
			if info.Mode().IsDir() && file == skip {
				return filepath.SkipDir
			}

			// Ignore anything that isn't a normal file with a known extension
			if !info.Mode().IsRegular() || !codec.Supported(strings.ToLower(filepath.Ext(file))) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return ctx.Err()
			}

			return nil
		})
	}()
	return out, errc, nil
}

// outputPath maps a source file under input to a PNG under output, keeping
// the relative directory structure.
func outputPath(input, output, file string) (string, error) {
	rel, err := filepath.Rel(input, file)
	if err != nil {
		return "", err
	}
	return filepath.Join(output, strings.TrimSuffix(rel, filepath.Ext(rel))+".png"), nil
}

func (a *AssetForge) imageWorker(ctx context.Context, job *Job, in <-chan string, results chan<- *Result) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			// Drain the remaining files once cancelled
			if ctx.Err() != nil {
				continue
			}

			dst, err := outputPath(job.Input, job.Output, file)
			if err != nil {
				errc <- err
				return
			}

			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				errc <- err
				return
			}

			r, err := a.Process(file, dst, job)
			if err != nil {
				errc <- err
				return
			}
			results <- r
		}
	}()
	return errc, nil
}

type summary struct {
	results   []*Result
	manifests map[string]*manifest.DB
	err       error
}

func (s *summary) add(r *Result) error {
	dir := filepath.Dir(r.Output)
	db, ok := s.manifests[dir]
	if !ok {
		var err error
		if db, err = manifest.Load(dir); err != nil {
			return err
		}
		s.manifests[dir] = db
	}
	return db.Set(filepath.Base(r.Output), manifest.Entry{
		Class:    r.Class,
		Width:    r.Width,
		Height:   r.Height,
		Source:   r.Source,
		Checksum: r.Checksum,
	})
}

// collect gathers results and per directory manifests until results is
// closed. It always drains results so workers never block.
func collect(results <-chan *Result) <-chan *summary {
	out := make(chan *summary, 1)
	go func() {
		defer close(out)
		s := &summary{
			manifests: make(map[string]*manifest.DB),
		}
		for r := range results {
			s.results = append(s.results, r)
			if s.err == nil {
				s.err = s.add(r)
			}
		}
		out <- s
	}()
	return out
}

// waitForPipeline waits for every stage to finish, cancelling the rest of
// the pipeline on the first error, which is returned.
func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch processes every supported image under job.Input into job.Output and
// updates the manifest in each output directory. The first error stops the
// batch and is returned once all in-flight images have finished.
func (a *AssetForge) Batch(ctx context.Context, job *Job) ([]*Result, error) {
	if job.Input == "" || job.Output == "" {
		return nil, errors.New("job needs both an input and output directory")
	}

	input, err := filepath.Abs(job.Input)
	if err != nil {
		return nil, err
	}
	output, err := filepath.Abs(job.Output)
	if err != nil {
		return nil, err
	}
	dup := *job
	dup.Input, dup.Output = input, output

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := a.findImages(ctx, input, output)
	if err != nil {
		return nil, err
	}
	errcList = append(errcList, errc)

	results := make(chan *Result)
	summaryc := collect(results)

	workers := job.Workers
	if workers < 1 {
		workers = defaultWorkers
	}
	for i := 0; i < workers; i++ {
		errc, err := a.imageWorker(ctx, &dup, files, results)
		if err != nil {
			return nil, err
		}
		errcList = append(errcList, errc)
	}

	err = waitForPipeline(cancelFunc, errcList...)
	close(results)

	sum := <-summaryc
	if err != nil {
		return nil, err
	}
	if sum.err != nil {
		return nil, sum.err
	}

	for dir, db := range sum.manifests {
		if err := db.Save(dir); err != nil {
			return nil, err
		}
	}

	return sum.results, nil
}
