package commands

import (
	"context"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	AppName string `name:"app-name" help:"Application name used in the index heading (overrides config)"`
	Append  bool   `name:"append" help:"Append to module documents from earlier runs"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	r := newRunner(cfg, g.AppName, g.Append)
	defer r.flushMetrics()

	ctx := context.Background()
	d, err := r.doc.WriteDocumentation(ctx)
	r.recordHistory(ctx, err)
	if err != nil {
		return err
	}
	summarize(d.Report())
	return nil
}
