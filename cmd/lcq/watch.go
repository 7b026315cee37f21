package main

import (
	"fmt"
	"time"

	"github.com/libconfig/go-libconfig/encode"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: watch requires one file", cli.ErrUsage)
	}
	every, err := time.ParseDuration(cfg.Every)
	if err != nil {
		return fmt.Errorf("%w: bad -every: %w", cli.ErrUsage, err)
	}
	file := args[0]

	// diagnostics agent for the long-running loop
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}
	defer agent.Close()

	last := ""
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for i := 0; cfg.Limit == 0 || i < cfg.Limit; i++ {
		cur, err := renderFile(cfg, file)
		if err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
		} else if cur != last {
			fmt.Fprint(cc.Out, cur)
			last = cur
		}
		<-ticker.C
	}
	return nil
}

func renderFile(cfg *WatchConfig, file string) (string, error) {
	c, err := cfg.load(file)
	if err != nil {
		return "", err
	}
	return encode.MustString(c.Root()), nil
}
