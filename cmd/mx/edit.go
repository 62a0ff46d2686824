package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	markup "github.com/markfmt/go-markup"
	"github.com/markfmt/go-markup/encode"
	"github.com/markfmt/go-markup/ir"
)

type EditConfig struct {
	*MainConfig
	MapConfig string `cli:"name=m desc='mapper config file (yaml)'"`

	Edit *cli.Command
}

// editOps maps op names to their argument count and effect.
var editOps = map[string]struct {
	nArgs int
	apply func(doc *ir.Document, args []string)
}{
	"add-attr": {3, func(doc *ir.Document, a []string) {
		markup.AddAttribute(doc, a[0], a[1], a[2])
	}},
	"rm-attr": {2, func(doc *ir.Document, a []string) {
		markup.RemoveAttribute(doc, a[0], a[1])
	}},
	"rename-attr": {3, func(doc *ir.Document, a []string) {
		markup.RenameAttribute(doc, a[0], a[1], a[2])
	}},
	"rename-entity": {2, func(doc *ir.Document, a []string) {
		markup.RenameEntity(doc, a[0], a[1])
	}},
	"rm-entity": {1, func(doc *ir.Document, a []string) {
		markup.RemoveEntity(doc, a[0])
	}},
}

func mxEdit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: edit requires an op", cli.ErrUsage)
	}
	opName := args[0]
	op, ok := editOps[opName]
	if !ok {
		return fmt.Errorf("%w: unknown op %q", cli.ErrUsage, opName)
	}
	args = args[1:]
	if len(args) < op.nArgs+1 {
		return fmt.Errorf("%w: op %q requires %d arguments plus data files", cli.ErrUsage, opName, op.nArgs)
	}
	opArgs, files := args[:op.nArgs], args[op.nArgs:]
	m, err := mapper(cfg.MapConfig)
	if err != nil {
		return err
	}
	for _, file := range files {
		doc, err := buildDoc(cfg.MainConfig, m, file)
		if err != nil {
			return fmt.Errorf("error building %s: %w", file, err)
		}
		op.apply(doc, opArgs)
		if err := encode.EncodeDocument(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
