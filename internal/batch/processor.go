package batch

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"lurevision/internal/imageio"
	"lurevision/internal/postprocess"
	"lurevision/internal/raster"
	"lurevision/internal/species"
	"lurevision/internal/vision"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Store        *species.Store
	Request      vision.Request
	Engine       string // "reference" or "parallel"
	Seed         uint64 // 0 seeds each file from the clock
	PixelWorkers int // row bands in flight per file; <= 0 uses PixelWorkersFor(Workers)
	Workers      int // files in flight
	MaxSize      int
	Format       string
	Logger       *slog.Logger
	Progress     io.Writer // nil disables the progress ticker
}

// Job is one input image and where its simulation goes.
type Job struct {
	Input  string
	Output string
}

// Result holds the outcome of processing one file.
type Result struct {
	Input   string
	Output  string
	Width   int
	Height  int
	Success bool
	Error   string
}

// Jobs maps inputs to outputs under outDir, named after the input stem.
// Inputs sharing a stem get a numeric suffix.
func Jobs(inputs []string, outDir, format string) []Job {
	jobs := make([]Job, len(inputs))
	seen := make(map[string]int)
	for i, in := range inputs {
		stem := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		n := seen[strings.ToLower(stem)]
		seen[strings.ToLower(stem)] = n + 1
		if n > 0 {
			stem = fmt.Sprintf("%s-%d", stem, n+1)
		}
		jobs[i] = Job{Input: in, Output: filepath.Join(outDir, stem+"."+format)}
	}
	return jobs
}

// PixelWorkersFor divides GOMAXPROCS among files concurrent file workers.
func PixelWorkersFor(files int) int {
	return max(1, runtime.GOMAXPROCS(0)/max(files, 1))
}

// Run processes all jobs using a worker pool. Results keep job order.
func Run(cfg Config, jobs []Job) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.PixelWorkers <= 0 {
		cfg.PixelWorkers = PixelWorkersFor(cfg.Workers)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f images/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processFile(cfg, idx, jobs[idx])
				if !results[idx].Success {
					cfg.Logger.Warn("simulation failed", "input", jobs[idx].Input, "err", results[idx].Error)
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, idx int, job Job) Result {
	res := Result{Input: job.Input, Output: job.Output}

	var rnd vision.RandSource
	if cfg.Seed != 0 {
		rnd = vision.NewRand(cfg.Seed + uint64(idx))
	}
	engine, err := vision.NewEngine(cfg.Engine, cfg.Store, rnd, cfg.PixelWorkers)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	img, err := imageio.Load(job.Input)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	img = postprocess.FitWithin(img, cfg.MaxSize)

	out, err := engine.Simulate(raster.FromNRGBA(img), cfg.Request)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Width, res.Height = out.Width, out.Height

	if err := imageio.Save(job.Output, out.NRGBA(), cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	cfg.Logger.Debug("simulated", "input", job.Input, "output", job.Output, "size", fmt.Sprintf("%dx%d", out.Width, out.Height))
	res.Success = true
	return res
}
