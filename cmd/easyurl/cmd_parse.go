package main

import (
	"github.com/spf13/cobra"

	"nikand.dev/go/easyurl"
)

func (a *app) parseCmd() *cobra.Command {
	var flag struct {
		Simple bool
	}

	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Decompose a URL into its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.parse(args[0], flag.Simple)
		},
	}

	cmd.Flags().String("base", "", "Base URL to resolve a relative reference against")
	cmd.Flags().BoolVar(&flag.Simple, "simple", false, "Export only the raw fields")

	return cmd
}

func (a *app) parse(href string, simple bool) error {
	u, err := easyurl.ParseRefString(href, a.cfg.Base)
	if err != nil {
		a.log.Error().Err(err).Str("href", href).Str("base", a.cfg.Base).Msg("parse")
		return err
	}

	a.log.Debug().Str("href", href).Str("result", u.String()).Msg("parsed")

	if a.cfg.Output == "text" {
		return a.print(u)
	}

	return a.print(u.ToFields(simple))
}
