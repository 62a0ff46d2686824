package main

import (
	"io"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/markfmt/go-markup/encode"
	"github.com/markfmt/go-markup/gomap"
	"github.com/markfmt/go-markup/ir"
	"github.com/markfmt/go-markup/visit"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='render with color'"`
	Gops  bool   `cli:"name=gops desc='start gops diagnostics agent'"`
	Root  string `cli:"name=root desc='root element name for built documents'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) rootName() string {
	if cfg.Root != "" {
		return cfg.Root
	}
	return "document"
}

// encOpts turns on color when requested or when writing to a
// terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

// mapper assembles the object mapper, applying a declarative config
// file when one is given.
func mapper(configPath string) (*gomap.Mapper, error) {
	if configPath == "" {
		return gomap.New(), nil
	}
	mapCfg, err := gomap.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	opts, err := mapCfg.Options()
	if err != nil {
		return nil, err
	}
	return gomap.New(opts...), nil
}

// buildDoc ingests a YAML data file into a fresh document. A
// top-level mapping contributes one subtree per key, in sorted key
// order; anything else is ingested as a single "value" subtree.
func buildDoc(cfg *MainConfig, m *gomap.Mapper, path string) (*ir.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	doc := ir.NewDocument(cfg.rootName())
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			node, err := m.MapNamed(k, x[k])
			if err != nil {
				return nil, err
			}
			doc.Root().Attach(node)
		}
	default:
		node, err := m.MapNamed("value", v)
		if err != nil {
			return nil, err
		}
		doc.Root().Attach(node)
	}
	return doc, nil
}

func printTags(w io.Writer, cfg *MainConfig, nodes []*ir.Node) {
	p := &visit.TagPrinter{W: w, Colors: cfg.colors(w)}
	for _, n := range nodes {
		p.Visit(n)
	}
}
