package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/querycache"
)

// settings are the options in effect after merging flags over the config.
type settings struct {
	maxLen int
	json   bool
	// color is nil to follow terminal detection.
	color *bool
	check bool
}

func (cli *CLI) settings(config *Config) settings {
	s := settings{
		maxLen: arith.DefaultMaxLen,
		json:   cli.JSON || config.JSON,
		color:  config.Color,
		check:  cli.Check,
	}
	if config.MaxLen != nil {
		s.maxLen = *config.MaxLen
	}
	if cli.MaxLen != 0 {
		s.maxLen = cli.MaxLen
	}
	if cli.NoColor {
		off := false
		s.color = &off
	}
	return s
}

// run answers every query from the inputs. failed reports whether any query
// had no value. err is set when an input could not be read or results could
// not be written.
func (cli *CLI) run(config *Config, stdin io.Reader, stdout, stderr io.Writer) (failed bool, err error) {
	set := cli.settings(config)
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	log.Debug("settings",
		slog.Int("max_len", set.maxLen),
		slog.Bool("json", set.json),
		slog.Bool("check", set.check),
	)

	p := printer{
		set:    set,
		opts:   []arith.Option{arith.MaxLen(set.maxLen)},
		stdout: stdout,
		stderr: stderr,
		errc:   color.New(color.FgRed),
		enc:    json.NewEncoder(stdout),
	}
	if set.color != nil {
		if *set.color {
			p.errc.EnableColor()
		} else {
			p.errc.DisableColor()
		}
	}
	p.store = querycache.New(querycache.EvalOptions(p.opts...), querycache.Logger(log))

	in, closer, err := infile(cli.In, stdin, len(cli.Exprs) == 0)
	if err != nil {
		return false, err
	}
	if in != nil {
		defer closer.Close()
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 4096), 1<<24)
		for sc.Scan() {
			p.query(sc.Text())
		}
		if err := sc.Err(); err != nil {
			return p.failed, fmt.Errorf("reading queries: %w", err)
		}
	}
	for _, q := range cli.Exprs {
		p.query(q)
	}
	if p.werr != nil {
		return p.failed, p.werr
	}
	log.Debug("done", slog.Int("queries", p.store.Len()), slog.Bool("failed", p.failed))
	return p.failed, nil
}

// infile opens the input named by name. "-" is stdin, as is the empty name
// when std is set. Otherwise an empty name is no input.
func infile(name string, stdin io.Reader, std bool) (io.Reader, io.Closer, error) {
	switch {
	case name != "" && name != "-":
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, fmt.Errorf("opening input: %w", err)
		}
		return f, f, nil
	case name == "-", std:
		return stdin, io.NopCloser(nil), nil
	}
	return nil, nil, nil
}

type printer struct {
	set    settings
	opts   []arith.Option
	store  *querycache.Store
	stdout io.Writer
	stderr io.Writer
	errc   *color.Color
	enc    *json.Encoder
	failed bool
	// werr is the first error writing results to stdout.
	werr error
}

// query answers a single query. Blank queries are skipped.
func (p *printer) query(q string) {
	if strings.TrimSpace(q) == "" {
		return
	}
	if p.set.check {
		_, err := fmt.Fprintln(p.stdout, strconv.FormatBool(arith.IsCandidate(q)))
		p.wrote(err)
		return
	}
	r := p.store.Resolve(q).Outcome
	if r.Kind() == arith.NoError && !r.OK() {
		// The store does not evaluate text that doesn't look like an
		// expression, but the user asked anyway.
		r = arith.Evaluate(q, p.opts...)
	}
	if !r.OK() {
		p.failed = true
	}
	switch {
	case p.set.json:
		p.wrote(p.enc.Encode(r))
	case r.OK():
		_, err := fmt.Fprintln(p.stdout, r.String())
		p.wrote(err)
	default:
		p.errc.Fprintf(p.stderr, "%s: %v\n", q, r.Err())
	}
}

// wrote records err from writing a result, keeping only the first.
func (p *printer) wrote(err error) {
	if err != nil && p.werr == nil {
		p.werr = fmt.Errorf("writing results: %w", err)
	}
}
