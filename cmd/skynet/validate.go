package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skynet/backdoor"
	"github.com/katalvlaran/skynet/flow"
	"github.com/katalvlaran/skynet/loader"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that puzzle descriptions load into a playable board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.validate(args)
		},
	}
}

func (a *app) validate(paths []string) error {
	failed := 0
	for _, path := range paths {
		if err := a.validateOne(path); err != nil {
			failed++
			a.logger.Warn("invalid puzzle", slog.String("path", path), slog.Any("err", err))
			fmt.Fprintf(a.out, "FAIL %s: %v\n", path, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(paths))
	}

	return nil
}

func (a *app) validateOne(path string) error {
	d, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	p, err := backdoor.New(d, backdoor.WithLogger(a.logger))
	if err != nil {
		return err
	}
	cut, err := flow.MinCut(context.Background(), p.Snapshot(), p.AgentPosition())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "ok   %s: links=%d gateways=%d agent=%d distance=%d min-cut=%d status=%s\n",
		path, len(p.Links()), len(p.Gateways()), p.AgentPosition(), p.Distance(), cut.Value, p.Status())

	return nil
}
