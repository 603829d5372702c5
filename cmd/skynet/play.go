package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skynet/agent"
	"github.com/katalvlaran/skynet/backdoor"
	"github.com/katalvlaran/skynet/builder"
	"github.com/katalvlaran/skynet/core"
	"github.com/katalvlaran/skynet/loader"
	"github.com/katalvlaran/skynet/strategy"
)

type playOptions struct {
	file     string
	format   string
	random   int
	seed     int64
	strategy string
	maxTurns int
	show     bool
}

func newPlayCmd(a *app) *cobra.Command {
	o := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a puzzle from a file or a random subnet",
		Example: `  skynet play --file subnet.txt
  skynet play --random 30 --seed 7 --strategy idle
  skynet play --file subnet.yaml --strategy stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				o.seed = time.Now().UnixNano()
			}
			return a.play(o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.file, "file", "f", "", "puzzle description file, - for stdin")
	f.StringVar(&o.format, "format", string(loader.FormatInts), "encoding of stdin: ints or yaml")
	f.IntVar(&o.random, "random", 0, "play a random subnet with this many nodes")
	f.Int64Var(&o.seed, "seed", 0, "seed for --random")
	f.StringVarP(&o.strategy, "strategy", "s", "greedy", "who cuts links: greedy, isolate, idle or stdin")
	f.IntVar(&o.maxTurns, "max-turns", 0, "stop after this many turns (0 = no limit)")
	f.BoolVar(&o.show, "show", false, "print the puzzle before playing")
	cmd.MarkFlagsMutuallyExclusive("file", "random")

	return cmd
}

func (a *app) play(o *playOptions) error {
	if o.file == "-" && o.strategy == "stdin" {
		return fmt.Errorf("%w: --file - and --strategy stdin both read stdin", errUsage)
	}
	d, err := a.description(o)
	if err != nil {
		return err
	}
	if o.show {
		if err := d.WriteInts(a.out); err != nil {
			return err
		}
	}

	s, err := a.pickStrategy(o.strategy)
	if err != nil {
		return err
	}

	p, err := backdoor.New(d,
		backdoor.WithLogger(a.logger),
		backdoor.WithNotifier(backdoor.LogNotifier{Logger: a.logger}),
		backdoor.WithNotifier(printer{w: a.out}),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "The agent starts at position: %d\n", p.AgentPosition())

	status, err := strategy.Play(p, s, o.maxTurns)
	if err != nil && !errors.Is(err, strategy.ErrTurnLimit) {
		return err
	}
	switch status {
	case agent.Won:
		fmt.Fprintf(a.out, "You saved the world! Agent trapped at %d after %d turns\n", p.AgentPosition(), p.Turn())
	case agent.Lost:
		fmt.Fprintf(a.out, "Agent has reached gateway %d after %d turns\n", p.AgentPosition(), p.Turn())
	default:
		fmt.Fprintf(a.out, "Agent still moving at %d after %d turns\n", p.AgentPosition(), p.Turn())
	}

	return err
}

// description loads or generates the puzzle named by o.
func (a *app) description(o *playOptions) (loader.Description, error) {
	switch {
	case o.random > 0:
		a.logger.Info("generating subnet", slog.Int("nodes", o.random), slog.Int64("seed", o.seed))
		return builder.RandomSubnet(o.random, builder.WithSeed(o.seed))
	case o.file == "-":
		d, err := loader.Parse(a.in, loader.Format(o.format))
		if err != nil {
			return d, err
		}
		return d, d.Validate()
	case o.file != "":
		return loader.LoadFile(o.file)
	}

	return loader.Description{}, fmt.Errorf("%w: one of --file or --random is required", errUsage)
}

func (a *app) pickStrategy(name string) (strategy.Strategy, error) {
	switch name {
	case "greedy":
		return strategy.Greedy{}, nil
	case "isolate":
		return strategy.Isolate{}, nil
	case "idle":
		return strategy.Func(func(*backdoor.Puzzle) (core.Link, bool) { return core.Link{}, false }), nil
	case "stdin":
		return stdinStrategy(a.in, a.out), nil
	}

	return nil, fmt.Errorf("%w: unknown strategy %q", errUsage, name)
}

// stdinStrategy reads one "a b" pair per turn. A line that does not hold
// two integers, or the end of input, cuts nothing.
func stdinStrategy(r io.Reader, w io.Writer) strategy.Strategy {
	sc := bufio.NewScanner(r)

	return strategy.Func(func(p *backdoor.Puzzle) (core.Link, bool) {
		fmt.Fprintf(w, "agent at %d, cut> ", p.AgentPosition())
		if !sc.Scan() {
			fmt.Fprintln(w)
			return core.Link{}, false
		}
		var x, y int
		if _, err := fmt.Sscan(sc.Text(), &x, &y); err != nil {
			return core.Link{}, false
		}

		return core.NewLink(x, y), true
	})
}

// printer renders turn events as plain text.
type printer struct{ w io.Writer }

func (pr printer) Notify(e backdoor.Event) {
	switch e.Kind {
	case backdoor.EventSevered:
		fmt.Fprintf(pr.w, "turn %d: severed %s\n", e.Turn, e.Link)
	case backdoor.EventMoved:
		fmt.Fprintf(pr.w, "turn %d: agent moved to %d\n", e.Turn, e.Agent)
	case backdoor.EventWon:
		fmt.Fprintf(pr.w, "turn %d: agent trapped at %d\n", e.Turn, e.Agent)
	case backdoor.EventLost:
		fmt.Fprintf(pr.w, "turn %d: agent entered gateway %d\n", e.Turn, e.Agent)
	}
}
