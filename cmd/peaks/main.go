// Command peaks renders the waveform envelope of an audio file to PNG and
// checks that every reference recording of the catalog decodes.
//
//	peaks [flags] input.mp3
//	peaks --check --root ./public
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pronounce/internal/asset"
	"pronounce/internal/catalog"
	"pronounce/internal/logging"
	"pronounce/internal/waveform"
)

type options struct {
	output      string
	width       int
	height      int
	barWidth    int
	barGap      int
	progress    float64
	check       bool
	root        string
	concurrency int
	logLevel    string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "peaks: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var opts options
	fs := pflag.NewFlagSet("peaks", pflag.ContinueOnError)
	fs.StringVarP(&opts.output, "output", "o", "", "output PNG (default: input name with .png)")
	fs.IntVar(&opts.width, "width", 600, "image width in pixels")
	fs.IntVar(&opts.height, "height", 64, "image height in pixels")
	fs.IntVar(&opts.barWidth, "bar-width", 3, "bar width in pixels")
	fs.IntVar(&opts.barGap, "bar-gap", 1, "gap between bars in pixels")
	fs.Float64Var(&opts.progress, "progress", 0, "playback fraction drawn as elapsed, 0..1")
	fs.BoolVar(&opts.check, "check", false, "decode every catalog reference under --root")
	fs.StringVar(&opts.root, "root", "public", "reference directory or http(s) URL for --check")
	fs.IntVarP(&opts.concurrency, "concurrency", "j", 4, "parallel fetches for --check")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := logging.New(logging.Options{Level: opts.logLevel})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if opts.check {
		return check(ctx, asset.NewReferenceFetcher(opts.root), opts.concurrency, stdout, log)
	}
	if fs.NArg() != 1 {
		return errors.New("expected one input file")
	}
	return render(ctx, fs.Arg(0), opts, stdout, log)
}

// render draws the envelope of one file the way the player surface does.
func render(ctx context.Context, input string, opts options, stdout io.Writer, log *zap.SugaredLogger) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}

	x := waveform.NewExtractor(&asset.DirFetcher{Root: filepath.Dir(input)}, log)
	buckets := waveform.BucketCount(opts.width, opts.barWidth, opts.barGap)
	ext, err := x.Extract(ctx, asset.Locator("/"+filepath.Base(input)), buckets)
	if err != nil {
		return err
	}

	style := waveform.DefaultStyle()
	style.BarWidth = opts.barWidth
	style.BarGap = opts.barGap

	img := image.NewRGBA(image.Rect(0, 0, opts.width, opts.height))
	waveform.Layout(ext.Envelope, opts.progress, opts.width, opts.height, style).Paint(img, style)

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %s, %d bars -> %s\n", input, waveform.FormatTime(ext.Duration), len(ext.Envelope), output)
	return nil
}

// check decodes every reference of the catalog with bounded concurrency
// and reports the ones that fail.
func check(ctx context.Context, fetcher asset.Fetcher, concurrency int, stdout io.Writer, log *zap.SugaredLogger) error {
	x := waveform.NewExtractor(fetcher, log)
	items := catalog.PracticeItems()

	var (
		mu       sync.Mutex
		failures = make(map[string]error)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))
	for _, item := range items {
		g.Go(func() error {
			ext, err := x.Extract(gctx, item.Reference, 1)
			if err != nil {
				mu.Lock()
				failures[item.ID] = err
				mu.Unlock()
				return nil
			}
			log.Debugw("reference ok", "id", item.ID, "seconds", ext.Duration)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	ids := make([]string, 0, len(failures))
	for id := range failures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(stdout, "FAIL %s: %v\n", id, failures[id])
	}
	fmt.Fprintf(stdout, "%d/%d references ok\n", len(items)-len(failures), len(items))

	if len(failures) > 0 {
		return fmt.Errorf("%d references failed", len(failures))
	}
	return nil
}
