// Package app runs the creational pattern demonstrations selected by the
// configuration and writes their output to a console stream.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/kilianp07/creational/config"
	"github.com/kilianp07/creational/core/builder"
	"github.com/kilianp07/creational/core/factory"
	"github.com/kilianp07/creational/core/prototype"
	"github.com/kilianp07/creational/core/report"
	"github.com/kilianp07/creational/infra/logger"
	"github.com/kilianp07/creational/metrics"
)

// Separator is printed between two demonstrations.
const Separator = "--------------------------------------------------------"

var headings = map[string]string{
	config.PatternPrototype:       "Prototype pattern",
	config.PatternBuilder:         "Builder pattern",
	config.PatternFactory:         "Factory pattern",
	config.PatternAbstractFactory: "Abstract factory pattern",
}

// Runner executes demonstrations in a fixed order.
type Runner struct {
	cfg     *config.Config
	out     io.Writer
	log     logger.Logger
	rec     metrics.Recorder
	catalog *Catalog
	runID   string
}

// Option customises a Runner.
type Option func(*Runner)

// WithOutput sets the console stream. Defaults to stdout.
func WithOutput(w io.Writer) Option { return func(r *Runner) { r.out = w } }

// WithLogger sets the diagnostic logger.
func WithLogger(l logger.Logger) Option { return func(r *Runner) { r.log = l } }

// WithRecorder sets the creation metrics recorder.
func WithRecorder(rec metrics.Recorder) Option { return func(r *Runner) { r.rec = rec } }

// New creates a Runner from the configuration. A nil configuration selects the
// defaults.
func New(cfg *config.Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	r := &Runner{
		cfg:     cfg,
		out:     os.Stdout,
		rec:     metrics.NopRecorder{},
		catalog: NewCatalog(),
		runID:   uuid.NewString(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.log == nil {
		r.log = logger.NewZerologLogger("runner", logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	}
	r.log = r.log.With("run_id", r.runID)
	r.rec = metrics.NewMultiRecorder(metrics.NewLogRecorder(r.log), r.rec)
	return r, nil
}

// RunID identifies this runner in its log entries.
func (r *Runner) RunID() string { return r.runID }

// Run executes every configured demonstration in order, separated by
// Separator lines.
func (r *Runner) Run(ctx context.Context) error {
	for i, p := range r.cfg.Demo.Patterns {
		if i > 0 {
			if _, err := fmt.Fprintln(r.out, Separator); err != nil {
				return err
			}
		}
		if err := r.RunPattern(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RunPattern executes a single demonstration with its heading.
func (r *Runner) RunPattern(ctx context.Context, pattern string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pattern = strings.ToLower(pattern)
	heading, ok := headings[pattern]
	if !ok {
		return fmt.Errorf("unknown pattern %s", pattern)
	}
	if _, err := fmt.Fprintln(r.out, heading); err != nil {
		return err
	}
	r.log.Debugf("running %s demonstration", pattern)

	var err error
	switch pattern {
	case config.PatternPrototype:
		err = r.runPrototype()
	case config.PatternBuilder:
		err = r.runBuilder()
	case config.PatternFactory:
		err = r.runFactory()
	case config.PatternAbstractFactory:
		err = r.runAbstractFactory()
	}
	if err != nil {
		r.log.Errorf("%s: %v", pattern, err)
		return fmt.Errorf("%s: %w", pattern, err)
	}
	return nil
}

func (r *Runner) runPrototype() error {
	reg := prototype.DefaultRegistry()
	defer reg.Close()
	for _, b := range r.cfg.Demo.Biomes {
		tmpl, err := prototype.NewTemplate(b.Kind, b.First, b.Second)
		if err != nil {
			return err
		}
		if err := reg.Register(b.Name, tmpl); err != nil {
			return err
		}
		r.log.Debugw("template registered", map[string]any{"name": b.Name, "kind": tmpl.Kind()})
	}
	for _, name := range r.cfg.Demo.Clone {
		clone, err := reg.Create(name)
		if err != nil {
			r.log.Warnf("known templates: %s", strings.Join(reg.Names(), ", "))
			return err
		}
		r.rec.RecordCreation(config.PatternPrototype, name)
		if err := prototype.Print(r.out, clone); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runBuilder() error {
	for _, mc := range r.cfg.Demo.Builders {
		b, err := r.catalog.Builders.Create(mc)
		if err != nil {
			return err
		}
		builder.NewDirector(b).Construct()
		computer := b.Computer()
		if err := computer.Validate(); err != nil {
			return fmt.Errorf("builder %s: %w", mc.Type, err)
		}
		r.rec.RecordCreation(config.PatternBuilder, strings.ToLower(mc.Type))
		if err := computer.Show(r.out); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runFactory() error {
	for _, format := range r.cfg.Demo.Reports {
		c, err := r.catalog.Reports.Create(factory.ModuleConfig{Type: format})
		if err != nil {
			return err
		}
		r.rec.RecordCreation(config.PatternFactory, strings.ToLower(format))
		if err := report.GenerateReport(c, r.out); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runAbstractFactory() error {
	for _, platform := range r.cfg.Demo.Platforms {
		f, err := r.catalog.Platforms.Create(factory.ModuleConfig{Type: platform})
		if err != nil {
			return err
		}
		video := f.CreateVideoPlayer()
		audio := f.CreateAudioPlayer()
		if video.Platform() != audio.Platform() {
			return fmt.Errorf("factory %s mixed families %s and %s", platform, video.Platform(), audio.Platform())
		}
		variant := strings.ToLower(platform)
		r.rec.RecordCreation(config.PatternAbstractFactory, variant)
		r.rec.RecordCreation(config.PatternAbstractFactory, variant)
		if err := video.Play(r.out); err != nil {
			return err
		}
		if err := audio.Play(r.out); err != nil {
			return err
		}
	}
	return nil
}
