package main

import (
	"encoding/json"
	"fmt"

	"github.com/libconfig/go-libconfig/gomap"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: export requires at least one file", cli.ErrUsage)
	}
	for _, file := range args {
		c, err := cfg.load(file)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		v := gomap.ToAny(c.Root())
		var out []byte
		switch cfg.Format {
		case "json", "j":
			out, err = json.MarshalIndent(v, "", "  ")
			if err == nil {
				out = append(out, '\n')
			}
		case "yaml", "y":
			out, err = yaml.Marshal(v)
		default:
			return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, cfg.Format)
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		cc.Out.Write(out)
	}
	return nil
}
