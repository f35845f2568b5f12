package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// CLI is the command line of arith.
type CLI struct {
	Exprs   []string `arg:"" optional:"" help:"Queries to evaluate."`
	In      string   `help:"Read queries from a file, one per line. Use - for stdin, which is the default when no queries are given." short:"i"`
	JSON    bool     `name:"json" help:"Print results as JSON envelopes."`
	MaxLen  int      `help:"Maximum query length in bytes. 0 uses the configured limit; negative removes the limit." env:"ARITH_MAX_LEN"`
	Config  string   `help:"Configuration file path." default:"arith.yaml"`
	Debug   bool     `help:"Log query cache activity." env:"ARITH_DEBUG"`
	NoColor bool     `help:"Disable colored output."`
	Check   bool     `help:"Only report whether each query looks like an arithmetic expression."`
}

func main() {
	// .env has to be in the environment before kong reads env tags.
	if err := loadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	var cli CLI
	kong.Parse(&cli,
		kong.Name("arith"),
		kong.Description("Evaluate arithmetic expressions."),
		kong.UsageOnError(),
	)
	config, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	failed, err := cli.run(config, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if failed {
		os.Exit(1)
	}
}
