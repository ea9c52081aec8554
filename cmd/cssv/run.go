package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssv/css"
	"cssv/state"
	"cssv/values"
)

func runFmt(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() != 1 {
		return fmt.Errorf("expected a single SOURCE argument, got %d", cmd.NArg())
	}

	var (
		data []byte
		err  error
	)
	if src := cmd.Args().Get(0); src == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}

	p := css.NewParser(env.Log)
	// rejected declarations surface as warnings, output holds the rest
	block, _ := p.ParseDeclarations(data)
	for _, w := range block.Warnings {
		env.Log.Warn("Declaration rejected", zap.String("reason", w))
	}
	if cmd.Bool("debug") {
		for _, d := range block.Declarations {
			if !d.Typed || d.Value.Auto || d.Value.Value == nil {
				continue
			}
			env.Log.Debug("Value tree", zap.String("property", d.Property), zap.String("tree", values.DumpTree(*d.Value.Value)))
		}
	}
	fmt.Println(block.String())
	return nil
}

func runAdd(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return fmt.Errorf("expected at least one VALUE argument")
	}

	var (
		parsed []values.LengthPercentage
		errs   error
	)
	for _, arg := range cmd.Args().Slice() {
		v, err := css.ParseValue(arg)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%q: %w", arg, err))
			continue
		}
		parsed = append(parsed, v)
	}
	if errs != nil {
		return errs
	}

	total := values.FromLength(values.Zero())
	for _, v := range parsed {
		total = total.Add(v)
	}
	env.Log.Debug("Combined value", zap.String("tree", values.DumpTree(total)))

	fmt.Println(total.String())
	return nil
}

func runScale(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() != 2 {
		return fmt.Errorf("expected FACTOR and VALUE arguments, got %d", cmd.NArg())
	}

	factor, err := strconv.ParseFloat(cmd.Args().Get(0), 32)
	if err != nil {
		return fmt.Errorf("invalid factor %q: %w", cmd.Args().Get(0), err)
	}

	v, err := css.ParseValue(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("%q: %w", cmd.Args().Get(1), err)
	}

	scaled := v.Scale(float32(factor))
	env.Log.Debug("Scaled value", zap.String("tree", values.DumpTree(scaled)))

	fmt.Println(scaled.String())
	return nil
}
