package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	markup "github.com/markfmt/go-markup"
)

type DiffConfig struct {
	*MainConfig
	MapConfig string `cli:"name=m desc='mapper config file (yaml)'"`

	Diff *cli.Command
}

func mxDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two data files", cli.ErrUsage)
	}
	m, err := mapper(cfg.MapConfig)
	if err != nil {
		return err
	}
	from, err := buildDoc(cfg.MainConfig, m, args[0])
	if err != nil {
		return fmt.Errorf("error building %s: %w", args[0], err)
	}
	to, err := buildDoc(cfg.MainConfig, m, args[1])
	if err != nil {
		return fmt.Errorf("error building %s: %w", args[1], err)
	}
	d, err := markup.Diff(from, to)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return nil
}
