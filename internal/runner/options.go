package runner

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds the parsed command-line configuration.
type Options struct {
	Pattern  string // pattern expression to compile
	Equal    string // second pattern for equivalence mode
	Alphabet string // alphabet for equal/bake/regex modes
	Input    string // input file with candidate lines (default stdin)
	Output   string // output file (default stdout)
	Regex    bool   // print the pattern's regex over the alphabet
	Bake     bool   // print the baked transition table
	Verbose  bool
	Silent   bool
}

// ParseFlags parses the command line into Options.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compositional DFA engine for regular expressions with anchors and lookaround.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "pattern expression (see package syntax for the grammar)"),
		flagSet.StringVarP(&opts.Input, "input", "i", "", "file with candidate lines to match (default stdin)"),
	)

	flagSet.CreateGroup("mode", "Mode",
		flagSet.StringVarP(&opts.Equal, "equal", "eq", "", "decide equivalence against this second pattern"),
		flagSet.BoolVarP(&opts.Regex, "regex", "re", false, "print a classical regex for the pattern over -alphabet"),
		flagSet.BoolVarP(&opts.Bake, "bake", "b", false, "print the baked transition table over -alphabet"),
		flagSet.StringVarP(&opts.Alphabet, "alphabet", "a", "", "alphabet bytes for equal/bake/regex modes"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}
