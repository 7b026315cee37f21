package main

import (
	"fmt"
	"io"

	"github.com/libconfig/go-libconfig/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires at least one file", cli.ErrUsage)
	}
	for _, file := range args {
		if err := viewFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	c, err := cfg.load(file)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", file, err)
	}
	return encode.Encode(c.Root(), w, cfg.encOpts(w)...)
}
