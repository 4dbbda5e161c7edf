package throughput

import (
	"errors"
	"time"

	"github.com/cwbudde/algo-synthgraph/dsp/graph"
	"github.com/cwbudde/algo-synthgraph/stats/output"
)

// Errors returned by throughput functions.
var (
	ErrNoSamples        = errors.New("throughput: total samples must be positive")
	ErrInvalidBlockSize = errors.New("throughput: block size must be positive")
	ErrNilExecutor      = errors.New("throughput: executor must not be nil")
)

// Config describes one timed rendering run.
type Config struct {
	SampleRate   float64 // render sample rate in Hz
	BlockSize    int     // samples per ProcessBlock call
	TotalSamples int     // samples to render in total
}

// DefaultConfig returns the reference run: ten seconds of audio at
// 44.1 kHz rendered in 512-sample blocks.
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		BlockSize:    512,
		TotalSamples: 441000,
	}
}

// Validate checks that the Config parameters are valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return errors.New("throughput: sample rate must be positive")
	}

	if c.BlockSize <= 0 {
		return ErrInvalidBlockSize
	}

	if c.TotalSamples <= 0 {
		return ErrNoSamples
	}

	return nil
}

// Result holds the timing of one rendering run.
type Result struct {
	TotalSamples int           // samples rendered
	Blocks       int           // ProcessBlock calls made
	Elapsed      time.Duration // wall time of the rendering loop

	MinBlock time.Duration // fastest single block
	MaxBlock time.Duration // slowest single block

	Output output.Stats // statistics of the rendered signal
}

// SamplesPerSecond returns the rendering rate in samples per second.
func (r *Result) SamplesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.TotalSamples) / r.Elapsed.Seconds()
}

// RealTimeFactor returns how many times faster than real time the run
// was at the given playback sample rate. A factor above 1 means the
// graph renders faster than it would play back.
func (r *Result) RealTimeFactor(sampleRate float64) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return r.SamplesPerSecond() / sampleRate
}

// MicrosPerSample returns the average cost of one sample in microseconds.
func (r *Result) MicrosPerSample() float64 {
	if r.TotalSamples == 0 {
		return 0
	}
	return float64(r.Elapsed.Microseconds()) / float64(r.TotalSamples)
}

// Measure prepares the executor for cfg and times a full rendering run.
// The final block is shortened when TotalSamples is not a multiple of
// BlockSize. Per-block minimum and maximum times are tracked so outliers
// show up next to the average. Every rendered block is folded into the
// result's output statistics, which also keeps the render loop from being
// optimized away.
func Measure(ex *graph.Executor, cfg Config) (*Result, error) {
	if ex == nil {
		return nil, ErrNilExecutor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := ex.Prepare(cfg.SampleRate, cfg.BlockSize); err != nil {
		return nil, err
	}

	res := &Result{TotalSamples: cfg.TotalSamples}
	acc := output.NewAccumulator()

	remaining := cfg.TotalSamples
	start := time.Now()

	for remaining > 0 {
		n := cfg.BlockSize
		if remaining < n {
			n = remaining
		}

		blockStart := time.Now()
		block, err := ex.ProcessBlock(n)
		if err != nil {
			return nil, err
		}
		blockTime := time.Since(blockStart)

		acc.Add(block)

		if res.Blocks == 0 || blockTime < res.MinBlock {
			res.MinBlock = blockTime
		}
		if blockTime > res.MaxBlock {
			res.MaxBlock = blockTime
		}

		res.Blocks++
		remaining -= n
	}

	res.Elapsed = time.Since(start)
	res.Output = acc.Result()

	return res, nil
}

// MeasurePreset builds the named preset topology and measures it.
func MeasurePreset(p graph.Preset, cfg Config) (*Result, error) {
	ex, err := graph.NewPreset(p)
	if err != nil {
		return nil, err
	}
	return Measure(ex, cfg)
}
