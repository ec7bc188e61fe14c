// Package media estimates the first-3-seconds hook ratio of short videos.
//
// The ratio min(3, duration)/duration is a coarse proxy for how much of a
// clip a short-attention viewer sees. It is supplementary data: every
// failure path degrades to absent values rather than aborting a batch.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"igpulse/pkg/caching"
	"igpulse/pkg/fetcher"
)

// hookWindowSeconds is the attention window the ratio is measured against.
const hookWindowSeconds = 3.0

// DurationProber retrieves a media duration in seconds.
type DurationProber interface {
	ProbeDuration(ctx context.Context, videoURL string) (float64, error)
}

// Estimator computes hook ratios using a DurationProber.
type Estimator struct {
	prober DurationProber
}

// NewEstimator builds an Estimator. prober may be nil, in which case every
// estimate is absent.
func NewEstimator(prober DurationProber) *Estimator {
	return &Estimator{prober: prober}
}

// Estimate returns (duration, hookRatio) for a post's video. Non-videos,
// missing URLs, probe failures and non-positive durations all yield
// (nil, nil). A zero duration is a provider error, not a computable input.
func (e *Estimator) Estimate(ctx context.Context, isVideo bool, videoURL string) (*float64, *float64) {
	if !isVideo || videoURL == "" || e.prober == nil {
		return nil, nil
	}

	duration, err := e.prober.ProbeDuration(ctx, videoURL)
	if err != nil || duration <= 0 {
		return nil, nil
	}

	hook := hookWindowSeconds / duration
	if hook > 1 {
		hook = 1
	}
	return &duration, &hook
}

// HTTPProber downloads a video to a scoped temporary file and reads its
// duration from the MP4 headers. Probed durations are cached by URL.
type HTTPProber struct {
	fetcher *fetcher.Fetcher
	cache   *caching.Cache
}

// NewHTTPProber builds an HTTPProber. cache may be nil to disable caching.
func NewHTTPProber(f *fetcher.Fetcher, cache *caching.Cache) *HTTPProber {
	return &HTTPProber{fetcher: f, cache: cache}
}

type cachedDuration struct {
	Duration float64 `json:"duration"`
}

// ProbeDuration downloads videoURL and returns its duration in seconds.
// The temporary file is removed on every path, including download and
// parse failures.
func (p *HTTPProber) ProbeDuration(ctx context.Context, videoURL string) (float64, error) {
	if p.cache != nil {
		if data, ok := p.cache.Get(videoURL); ok {
			var entry cachedDuration
			if err := json.Unmarshal(data, &entry); err == nil {
				return entry.Duration, nil
			}
		}
	}

	tmp, err := os.CreateTemp("", "igpulse-*.mp4")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := p.fetcher.Download(ctx, videoURL, tmp); err != nil {
		return 0, fmt.Errorf("failed to download video: %w", err)
	}

	if _, err := tmp.Seek(0, 0); err != nil {
		return 0, fmt.Errorf("failed to rewind temp file: %w", err)
	}

	duration, err := readMP4Duration(tmp)
	if err != nil {
		return 0, fmt.Errorf("failed to probe duration: %w", err)
	}

	if p.cache != nil {
		if data, err := json.Marshal(cachedDuration{Duration: duration}); err == nil {
			_ = p.cache.Set(videoURL, data)
		}
	}
	return duration, nil
}
