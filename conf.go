// Package conf assembles application configuration out of command
// line flags, environment variables, and discovered configuration
// files, with first-match-wins precedence, and loads typed values out
// of the result through the schema package.
//
//	src, err := conf.New(
//		conf.WithArgs(os.Args[1:]),
//		conf.WithEnviron(os.Environ()),
//		conf.WithDir("."),
//		conf.WithBase("config"),
//		conf.WithProfiles("prod"),
//	)
//
// Precedence runs command line, then environment, then files, most
// specific profile variant first. Active profiles are an explicit
// argument threaded through the assembly; there is no process-wide
// profile state.
//
// Every assembled backend is also checked for the reserved conf.json
// key (source.JSONKey): a JSON object found there is inserted as a
// nested source directly after the backend it came from, so explicit
// keys on the raw backend win over blob contents.
package conf

import (
	"github.com/signadot/go-conf/schema"
	"github.com/signadot/go-conf/source"
)

type options struct {
	args     []string
	argsSet  bool
	environ  []string
	envSet   bool
	dir      string
	base     string
	profiles []string
	extra    []source.Source
}

type Option func(*options)

// WithArgs includes a command-line source parsed from args, at the
// highest precedence.
func WithArgs(args []string) Option {
	return func(o *options) {
		o.args = args
		o.argsSet = true
	}
}

// WithEnviron includes an environment source built from "NAME=value"
// pairs, e.g. os.Environ().
func WithEnviron(pairs []string) Option {
	return func(o *options) {
		o.environ = pairs
		o.envSet = true
	}
}

// WithDir enables file discovery under dir.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithBase sets the configuration file base name. Default "config".
func WithBase(base string) Option {
	return func(o *options) { o.base = base }
}

// WithProfiles activates profile variants of the configuration files.
func WithProfiles(profiles ...string) Option {
	return func(o *options) { o.profiles = append(o.profiles, profiles...) }
}

// WithSource appends an extra source below everything else.
func WithSource(src source.Source) Option {
	return func(o *options) { o.extra = append(o.extra, src) }
}

// New assembles the combined source. Backend-level failures — an
// unreadable or malformed configuration file, a bad conf.json blob —
// are collected across all backends and returned together as a
// source.Errors.
func New(opts ...Option) (*source.Combining, error) {
	o := &options{base: "config"}
	for _, opt := range opts {
		opt(o)
	}

	var (
		combined = source.NewCombining()
		errs     source.Errors
	)
	add := func(src source.Source) {
		combined.Add(src)
		sub, err := source.FromJSON(src, source.JSONKey)
		if err != nil {
			errs = appendErr(errs, err)
			return
		}
		if sub != nil {
			combined.Add(sub)
		}
	}

	if o.argsSet {
		add(source.NewCommandLine(o.args))
	}
	if o.envSet {
		add(source.NewEnviron(o.environ))
	}
	if o.dir != "" {
		files, err := DiscoverSources(o.dir, o.base, o.profiles)
		if err != nil {
			errs = appendErr(errs, err)
		}
		for _, f := range files {
			add(f)
		}
	}
	for _, src := range o.extra {
		add(src)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return combined, nil
}

// Load assembles a source per opts and loads the schema root against
// it, returning either the fully typed value or every failure found.
func Load[T any](n schema.Node[T], opts ...Option) (T, error) {
	src, err := New(opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return schema.Load(n, src)
}

func appendErr(errs source.Errors, err error) source.Errors {
	switch e := err.(type) {
	case source.Error:
		return append(errs, e)
	case source.Errors:
		return append(errs, e...)
	default:
		return append(errs, source.Error{Message: err.Error()})
	}
}
