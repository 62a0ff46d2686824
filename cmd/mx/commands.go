package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "mx").
		WithSynopsis("mx [opts] command [opts]").
		WithDescription("mx is a tool for building, querying and editing markup documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mxMain(cfg, cc, args)
		}).
		WithSubs(
			BuildCommand(cfg),
			QueryCommand(cfg),
			EditCommand(cfg),
			DiffCommand(cfg))
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("build").
		WithAliases("b").
		WithSynopsis("build [-m mapconfig] [files]").
		WithDescription("Build documents from yaml data files and render them").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mxBuild(cfg, cc, args)
		})
	cfg.Build = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query -p path [-m mapconfig] [files]").
		WithDescription("Match nodes by a path of exact names, one segment per level").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mxQuery(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func EditCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("edit").
		WithAliases("e").
		WithSynopsis("edit op args [-m mapconfig] [files]").
		WithDescription("Apply a bulk edit to whole documents and render the result.\n" +
			"ops: add-attr entity name value | rm-attr entity name |\n" +
			"rename-attr entity old new | rename-entity old new | rm-entity entity").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mxEdit(cfg, cc, args)
		})
	cfg.Edit = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-m mapconfig] a.yaml b.yaml").
		WithDescription("Diff the rendered forms of two built documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mxDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
