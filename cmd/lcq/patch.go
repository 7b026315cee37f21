package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/libconfig/go-libconfig/encode"
	"github.com/libconfig/go-libconfig/gomap"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p <patch.json>", cli.ErrUsage)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: patch requires one configuration file", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", cfg.PatchFile, err)
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", cfg.PatchFile, err)
	}
	c, err := cfg.load(args[0])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	doc, err := json.Marshal(gomap.ToAny(c.Root()))
	if err != nil {
		return err
	}
	patched, err := p.Apply(doc)
	if err != nil {
		return fmt.Errorf("error applying %s: %w", cfg.PatchFile, err)
	}
	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	root, err := gomap.FromAny("", v)
	if err != nil {
		return fmt.Errorf("patched document does not fit the format: %w", err)
	}
	return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...)
}
