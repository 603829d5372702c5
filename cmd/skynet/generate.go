package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skynet/builder"
	"github.com/katalvlaran/skynet/loader"
)

type generateOptions struct {
	topology    string
	n           int
	rows, cols  int
	p           float64
	seed        int64
	seeded      bool
	gateways    int
	minDistance int
	format      string
	out         string
}

func newGenerateCmd(a *app) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle description",
		Example: `  skynet generate --topology subnet --n 40 --seed 3
  skynet generate --topology grid --rows 5 --cols 8 --gateways 3 --format yaml -o grid.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o.seeded = cmd.Flags().Changed("seed")
			return a.generate(o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.topology, "topology", "t", "subnet",
		"cycle, path, star, complete, wheel, grid, bipartite, sparse or subnet")
	f.IntVarP(&o.n, "n", "n", 20, "node count (bipartite: left partition size)")
	f.IntVar(&o.rows, "rows", 4, "grid rows")
	f.IntVar(&o.cols, "cols", 4, "grid columns (bipartite: right partition size)")
	f.Float64VarP(&o.p, "p", "p", 0.15, "link probability for sparse")
	f.Int64Var(&o.seed, "seed", 0, "rng seed; without it placement is deterministic")
	f.IntVarP(&o.gateways, "gateways", "g", 1, "gateway count (ignored by subnet)")
	f.IntVar(&o.minDistance, "min-distance", 1, "minimum hops from agent to any gateway (ignored by subnet)")
	f.StringVar(&o.format, "format", string(loader.FormatInts), "output encoding: ints or yaml")
	f.StringVarP(&o.out, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func (a *app) generate(o *generateOptions) error {
	if o.gateways < 1 || o.minDistance < 1 {
		return fmt.Errorf("%w: --gateways and --min-distance must be at least 1", errUsage)
	}
	format := loader.Format(o.format)
	if format != loader.FormatInts && format != loader.FormatYAML {
		return fmt.Errorf("%w: %w: %q", errUsage, loader.ErrUnsupportedFormat, o.format)
	}

	seed := o.seed
	if !o.seeded && (o.topology == "sparse" || o.topology == "subnet") {
		seed = time.Now().UnixNano()
		o.seeded = true
	}
	bopts := []builder.BuilderOption{
		builder.WithGateways(o.gateways),
		builder.WithMinAgentDistance(o.minDistance),
	}
	if o.seeded {
		bopts = append(bopts, builder.WithSeed(seed))
	}

	var (
		d   loader.Description
		err error
	)
	if o.topology == "subnet" {
		d, err = builder.RandomSubnet(o.n, bopts...)
	} else {
		var con builder.Constructor
		if con, err = constructorFor(o); err != nil {
			return err
		}
		d, err = builder.BuildPuzzle(bopts, con)
	}
	if err != nil {
		return err
	}
	a.logger.Info("generated puzzle",
		slog.String("topology", o.topology),
		slog.Int64("seed", seed),
		slog.Int("links", len(d.Links)),
		slog.Int("gateways", len(d.Gateways)),
		slog.Int("agent", d.Agent))

	if o.out == "" {
		return d.Write(a.out, format)
	}
	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := d.Write(f, format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func constructorFor(o *generateOptions) (builder.Constructor, error) {
	switch o.topology {
	case "cycle":
		return builder.Cycle(o.n), nil
	case "path":
		return builder.Path(o.n), nil
	case "star":
		return builder.Star(o.n), nil
	case "complete":
		return builder.Complete(o.n), nil
	case "wheel":
		return builder.Wheel(o.n), nil
	case "grid":
		return builder.Grid(o.rows, o.cols), nil
	case "bipartite":
		return builder.CompleteBipartite(o.n, o.cols), nil
	case "sparse":
		return builder.RandomSparse(o.n, o.p), nil
	}

	return nil, fmt.Errorf("%w: unknown topology %q", errUsage, o.topology)
}
