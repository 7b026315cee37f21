package main

import (
	"fmt"

	"github.com/libconfig/go-libconfig/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a path and at least one file", cli.ErrUsage)
	}
	path := args[0]
	for _, file := range args[1:] {
		c, err := cfg.load(file)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		s, err := c.Lookup(path)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", path, file, err)
		}
		if err := encode.Encode(s, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
