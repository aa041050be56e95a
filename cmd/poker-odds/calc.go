package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lox/pokerodds/internal/equity"
	"github.com/lox/pokerodds/internal/fileutil"
)

type CalcCmd struct {
	Hands         []string `arg:"" required:"" help:"Player hands, e.g. 'AcKd' 'QhJs'"`
	Board         string   `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Dead          string   `short:"d" help:"Dead cards that cannot be dealt"`
	Possibilities bool     `short:"p" help:"Show hand category probabilities"`
	Output        string   `short:"o" type:"path" help:"Also write the result as JSON to this file"`

	EngineFlags `embed:""`
}

func (c *CalcCmd) Run(g *Globals) error {
	logger, cfg, err := g.setup()
	if err != nil {
		return err
	}
	engine, err := newEngine(logger, c.apply(cfg.Engine))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	r, err := calculate(ctx, engine, "", c.Hands, c.Board, c.Dead)
	if err != nil {
		return err
	}

	displayReport(os.Stdout, r, c.Possibilities)
	return writeOutput(c.Output, r)
}

func calculate(ctx context.Context, engine *equity.Engine, name string, hands []string, board, dead string) (report, error) {
	in, err := equity.ParseInput(hands, board, dead)
	if err != nil {
		return report{}, err
	}
	res, err := engine.Evaluate(ctx, in)
	if err != nil {
		return report{}, err
	}
	return newReport(name, in, res), nil
}

// writeOutput writes v as JSON to path; an empty path is a no-op.
func writeOutput(path string, v any) error {
	if path == "" {
		return nil
	}
	if err := fileutil.WriteJSONAtomic(path, v, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
