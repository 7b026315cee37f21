package main

import (
	"fmt"

	"github.com/libconfig/go-libconfig/gomap"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires -e <expr>", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires at least one file", cli.ErrUsage)
	}
	for _, file := range args {
		c, err := cfg.load(file)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		env, ok := gomap.ToAny(c.Root()).(map[string]any)
		if !ok {
			return fmt.Errorf("%s: root did not project onto a map", file)
		}
		program, err := expr.Compile(cfg.Expr, expr.Env(env))
		if err != nil {
			return fmt.Errorf("error compiling %q: %w", cfg.Expr, err)
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", cfg.Expr, file, err)
		}
		fmt.Fprintf(cc.Out, "%v\n", out)
	}
	return nil
}
