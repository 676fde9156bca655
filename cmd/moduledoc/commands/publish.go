package commands

import (
	"context"

	"git.home.luguber.info/inful/moduledoc/internal/config"
	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

// PublishCmd implements the 'publish' command: generate, then move.
type PublishCmd struct {
	Destination string `arg:"" optional:"" help:"Destination folder (defaults to publish.destination)"`
	AppName     string `name:"app-name" help:"Application name used in the index heading (overrides config)"`
}

func (p *PublishCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	dest, err := publishDestination(p.Destination, cfg)
	if err != nil {
		return err
	}

	r := newRunner(cfg, p.AppName, false)
	defer r.flushMetrics()

	ctx := context.Background()
	d, err := r.doc.WriteDocumentation(ctx)
	if err == nil {
		err = d.MoveToFolder(dest)
	}
	r.recordHistory(ctx, err)
	if err != nil {
		return err
	}
	summarize(d.Report())
	return nil
}

// publishDestination prefers the CLI argument over the configured folder.
func publishDestination(arg string, cfg *config.Config) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if cfg.Publish.Destination == "" {
		return "", ferrors.ValidationError("no destination given and publish.destination is not set").Build()
	}
	return cfg.Resolve(cfg.Publish.Destination), nil
}
