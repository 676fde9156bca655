package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/moduledoc/cmd/moduledoc/commands"
	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("moduledoc"),
		kong.Description("Aggregate module documentation fragments into AsciiDoc documents"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := parser.Run(&commands.Global{Logger: slog.Default()}, cli)
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
