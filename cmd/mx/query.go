package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	markup "github.com/markfmt/go-markup"
)

type QueryConfig struct {
	*MainConfig
	Path      string `cli:"name=p desc='path expression, names separated by /'"`
	MapConfig string `cli:"name=m desc='mapper config file (yaml)'"`

	Query *cli.Command
}

func mxQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Path == "" {
		return fmt.Errorf("%w: query requires -p", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires at least one data file", cli.ErrUsage)
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
		printTags(cc.Out, cfg.MainConfig, markup.QueryNodes(doc, cfg.Path))
	}
	return nil
}
