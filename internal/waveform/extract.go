package waveform

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pronounce/internal/asset"
	"pronounce/internal/media"
)

// Extraction is the decoded form of one asset.
type Extraction struct {
	Clip     *media.Clip
	Envelope Envelope
	Duration float64
}

// Extractor turns asset locators into envelopes.
type Extractor struct {
	fetcher asset.Fetcher
	log     *zap.SugaredLogger
}

// NewExtractor creates an extractor reading assets through fetcher.
func NewExtractor(fetcher asset.Fetcher, log *zap.SugaredLogger) *Extractor {
	return &Extractor{fetcher: fetcher, log: log}
}

// Extract fetches and fully decodes loc, then reduces channel 0 to
// buckets peaks.
func (x *Extractor) Extract(ctx context.Context, loc asset.Locator, buckets int) (*Extraction, error) {
	data, err := x.fetcher.Fetch(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", loc, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clip, err := media.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", loc, err)
	}

	env := Peaks(clip.Channel0(), buckets)
	x.log.Debugw("envelope extracted",
		"locator", loc,
		"bytes", len(data),
		"rate", clip.Format.SampleRate,
		"frames", clip.Len(),
		"buckets", len(env),
	)

	return &Extraction{
		Clip:     clip,
		Envelope: env,
		Duration: clip.Seconds(),
	}, nil
}
