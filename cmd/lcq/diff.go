package main

import (
	"fmt"

	"github.com/libconfig/go-libconfig/encode"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	c1, err := cfg.load(args[0])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	c2, err := cfg.load(args[1])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[1], err)
	}
	s1, s2 := encode.MustString(c1.Root()), encode.MustString(c2.Root())
	if s1 == s2 {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(s1, s2, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.Color {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		for _, d := range diffs {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				fmt.Fprintf(cc.Out, "+%s", d.Text)
			case diffmatchpatch.DiffDelete:
				fmt.Fprintf(cc.Out, "-%s", d.Text)
			default:
				fmt.Fprint(cc.Out, d.Text)
			}
		}
	}
	return cli.ExitCodeErr(1)
}
