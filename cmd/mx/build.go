package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/markfmt/go-markup/encode"
)

type BuildConfig struct {
	*MainConfig
	MapConfig string `cli:"name=m desc='mapper config file (yaml)'"`

	Build *cli.Command
}

func mxBuild(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: build requires at least one data file", cli.ErrUsage)
	}
	m, err := mapper(cfg.MapConfig)
	if err != nil {
		return err
	}
	for _, arg := range args {
		doc, err := buildDoc(cfg.MainConfig, m, arg)
		if err != nil {
			return fmt.Errorf("error building %s: %w", arg, err)
		}
		if err := encode.EncodeDocument(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
