// Package runner wires the refa engine to its command line.
package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/projectdiscovery/gologger"

	"github.com/coregx/refa"
	"github.com/coregx/refa/dfa"
)

// Runner executes one CLI invocation.
type Runner struct {
	opts    *Options
	pattern *refa.Pattern
}

// New compiles the configured pattern and validates the options.
func New(opts *Options) (*Runner, error) {
	if opts.Pattern == "" {
		return nil, errors.New("no pattern given (-pattern)")
	}
	if (opts.Equal != "" || opts.Regex || opts.Bake) && opts.Alphabet == "" {
		return nil, errors.New("equal/bake/regex modes need -alphabet")
	}
	p, err := refa.Compile(opts.Pattern)
	if err != nil {
		return nil, err
	}
	return &Runner{opts: opts, pattern: p}, nil
}

// Run dispatches on the selected mode.
func (r *Runner) Run() error {
	out, closeOut, err := r.output()
	if err != nil {
		return err
	}
	defer closeOut()

	alphabet := []byte(r.opts.Alphabet)
	switch {
	case r.opts.Equal != "":
		return r.runEqual(out, alphabet)
	case r.opts.Regex:
		fmt.Fprintln(out, r.pattern.ToRegex(alphabet))
		return nil
	case r.opts.Bake:
		return r.runBake(out, alphabet)
	default:
		return r.runMatch(out)
	}
}

func (r *Runner) runEqual(out io.Writer, alphabet []byte) error {
	other, err := refa.Compile(r.opts.Equal)
	if err != nil {
		return errors.Wrap(err, "second pattern")
	}
	witness, equal := refa.Equal(r.pattern, other, alphabet)
	if equal {
		fmt.Fprintln(out, "equivalent")
		return nil
	}
	gologger.Info().Msgf("patterns differ on a length-%d input", len(witness))
	fmt.Fprintf(out, "distinguished by: %q\n", witness)
	return nil
}

func (r *Runner) runBake(out io.Writer, alphabet []byte) error {
	baked := r.pattern.Bake(alphabet)
	gologger.Info().Msgf("baked %d states over %d symbols", baked.Len(), len(alphabet))
	for id := 0; id < baked.Len(); id++ {
		sid := dfa.StateID(id)
		marker := " "
		if baked.IsAccept(sid) {
			marker = "*"
		}
		fmt.Fprintf(out, "%s%4d:", marker, id)
		for _, c := range alphabet {
			if next, ok := baked.Transition(sid, c); ok {
				fmt.Fprintf(out, " %c->%d", c, next)
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

func (r *Runner) runMatch(out io.Writer) error {
	in := os.Stdin
	if r.opts.Input != "" {
		f, err := os.Open(r.opts.Input)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
	}

	matched := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Bytes()
		if r.pattern.Match(line) {
			matched++
			fmt.Fprintf(out, "%s\n", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	gologger.Verbose().Msgf("%d line(s) matched", matched)
	return nil
}

func (r *Runner) output() (io.Writer, func(), error) {
	if r.opts.Output == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(r.opts.Output)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output")
	}
	return f, func() { f.Close() }, nil
}
