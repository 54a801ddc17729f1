// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program rijson lexes, parses, and streams JSON text.
//
// Usage:
//
//	rijson tokens FILE   # print each token with its location
//	rijson parse FILE    # parse one value and print it
//	rijson stream FILE   # print each object of a top-level array
//
// A FILE of "-" (the default) reads standard input.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/creachadair/rijson"
	"github.com/creachadair/rijson/internal/config"
	"github.com/creachadair/rijson/path"
	"github.com/tailscale/hujson"
	"go.uber.org/zap"
)

type options struct {
	Config        string `help:"Path to a YAML config file." type:"path"`
	MaxDepth      int    `help:"Maximum nesting depth, 0 for unlimited (default from config)." default:"-1" placeholder:"N"`
	AllowComments bool   `help:"Accept comments and trailing commas (JWCC)."`
	Select        string `help:"Dotted path to select from each value, e.g. items.0.name."`
	Pretty        bool   `help:"Pretty-print values."`
	Debug         bool   `help:"Enable debug logging." short:"d"`

	Tokens tokensCmd `cmd:"" help:"Print the tokens of the input with their locations."`
	Parse  parseCmd  `cmd:"" help:"Parse a single JSON value and print it."`
	Stream streamCmd `cmd:"" help:"Print the objects of a top-level array, one per line."`
}

func main() {
	var opts options
	kctx := kong.Parse(&opts,
		kong.Name("rijson"),
		kong.Description("Lex, parse, and stream JSON text."),
		kong.UsageOnError(),
	)

	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rijson: %v\n", err)
		os.Exit(1)
	}
	log, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rijson: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	e := &env{ctx: ctx, cfg: cfg, log: log, in: os.Stdin, out: os.Stdout}
	if err := kctx.Run(e); err != nil {
		log.Error("command failed", zap.String("command", kctx.Command()), zap.Error(err))
		cancel()
		log.Sync()
		os.Exit(1)
	}
}

// unsetDepth is the default of the --max-depth flag, meaning the flag was
// not given.
const unsetDepth = -1

// loadConfig reads the config file named by o, or the nearest one found from
// the working directory, and applies the flag overrides from o.
func (o *options) loadConfig() (*config.Config, error) {
	if o.MaxDepth < unsetDepth {
		return nil, fmt.Errorf("--max-depth must not be negative (got %d)", o.MaxDepth)
	}
	cfg := config.NewConfig()
	name := o.Config
	if name == "" {
		if wd, err := os.Getwd(); err == nil {
			name = config.FindConfigFile(wd)
		}
	}
	if name != "" {
		var err error
		cfg, err = config.Load(name)
		if err != nil {
			return nil, err
		}
	}
	o.apply(cfg)
	return cfg, cfg.Validate()
}

// apply overrides the settings of cfg with flags that were set.
func (o *options) apply(cfg *config.Config) {
	if o.MaxDepth != unsetDepth {
		cfg.MaxDepth = o.MaxDepth
	}
	if o.AllowComments {
		cfg.AllowComments = true
	}
	if o.Select != "" {
		cfg.Output.Select = o.Select
	}
	if o.Pretty {
		cfg.Output.Pretty = true
	}
	if o.Debug {
		cfg.Debug = true
	}
}

// newLogger returns a development logger if debug is true, otherwise a
// production logger at info level. Both write to stderr.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopmentConfig().Build()
	}
	logConf := zap.NewProductionConfig()
	logConf.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	return logConf.Build()
}

// env carries the settings and I/O shared by the subcommands.
type env struct {
	ctx context.Context
	cfg *config.Config
	log *zap.Logger
	in  io.Reader
	out io.Writer
}

// readInput reads the contents of the named file, or of e.in if name is "-".
// When comments are allowed, the input is standardized to plain JSON first.
func (e *env) readInput(name string) ([]rune, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(e.in)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	if e.cfg.AllowComments {
		data, err = hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("standardize %s: %w", name, err)
		}
	}
	e.log.Debug("read input", zap.String("file", name), zap.Int("bytes", len(data)))
	return []rune(string(data)), nil
}

func (e *env) newParser(input []rune) *rijson.Parser {
	p := rijson.NewParser(input)
	p.SetMaxDepth(e.cfg.MaxDepth)
	return p
}

// selectValue applies the configured selector to v.
func (e *env) selectValue(v rijson.Value) (rijson.Value, error) {
	sel := e.cfg.Output.Select
	if sel == "" {
		return v, nil
	}
	return path.Get(v, path.Parse(sel)...)
}

// write prints v to e.out on its own line.
func (e *env) write(v rijson.Value) error {
	if e.cfg.Output.Pretty {
		if err := rijson.Format(e.out, v); err != nil {
			return err
		}
		_, err := io.WriteString(e.out, "\n")
		return err
	}
	_, err := fmt.Fprintln(e.out, v)
	return err
}

type tokensCmd struct {
	File string `arg:"" optional:"" default:"-" help:"Input file (- for stdin)."`
}

func (c *tokensCmd) Run(e *env) error {
	input, err := e.readInput(c.File)
	if err != nil {
		return err
	}
	l := rijson.NewLexer(input)
	for {
		tok := l.NextToken()
		if tok == (rijson.EOF{}) {
			return nil
		}
		if _, err := fmt.Fprintf(e.out, "%s\t%s\t%s\n", l.Location(), tokenLabel(tok), tok); err != nil {
			return err
		}
	}
}

// tokenLabel returns a short description of the type of tok.
func tokenLabel(tok rijson.Token) string {
	switch t := tok.(type) {
	case rijson.Punct:
		return "punct"
	case rijson.StringLit:
		if t.Unterminated {
			return "string(unterminated)"
		}
		return "string"
	case rijson.NumberLit:
		return "number"
	case rijson.BoolLit:
		return "bool"
	case rijson.NullLit:
		return "null"
	case rijson.Illegal:
		return "illegal"
	case rijson.InvalidKeyword:
		return "keyword(invalid)"
	case rijson.EOF:
		return "eof"
	default:
		panic(fmt.Sprintf("unknown token type %T", tok))
	}
}

type parseCmd struct {
	File string `arg:"" optional:"" default:"-" help:"Input file (- for stdin)."`
}

func (c *parseCmd) Run(e *env) error {
	input, err := e.readInput(c.File)
	if err != nil {
		return err
	}
	start := time.Now()
	v, err := e.newParser(input).ParseContext(e.ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	e.log.Debug("parsed value", zap.String("file", c.File),
		zap.Stringer("kind", v.Kind()), zap.Duration("elapsed", time.Since(start)))
	sel, err := e.selectValue(v)
	if err != nil {
		return err
	}
	return e.write(sel)
}

type streamCmd struct {
	File string `arg:"" optional:"" default:"-" help:"Input file (- for stdin)."`
}

func (c *streamCmd) Run(e *env) error {
	input, err := e.readInput(c.File)
	if err != nil {
		return err
	}
	start := time.Now()
	p := e.newParser(input)
	var n int
	for ; ; n++ {
		obj, err := p.NextContext(e.ctx)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return fmt.Errorf("%s: element %d: %w", c.File, n, err)
		}
		sel, err := e.selectValue(obj)
		if err != nil {
			e.log.Warn("skipped element", zap.String("file", c.File), zap.Int("index", n), zap.Error(err))
			continue
		}
		if err := e.write(sel); err != nil {
			return err
		}
	}
	e.log.Debug("stream complete", zap.String("file", c.File),
		zap.Int("objects", n), zap.Duration("elapsed", time.Since(start)))
	return nil
}
