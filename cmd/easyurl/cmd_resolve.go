package main

import (
	"github.com/spf13/cobra"

	"nikand.dev/go/easyurl"
)

func (a *app) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <ref> <base>",
		Short: "Resolve a relative reference against a base URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(args[0], args[1])
		},
	}
}

func (a *app) resolve(ref, base string) error {
	u, err := easyurl.ParseRefString(ref, base)
	if err != nil {
		a.log.Error().Err(err).Str("ref", ref).Str("base", base).Msg("resolve")
		return err
	}

	href := u.Href()

	a.log.Debug().Str("ref", ref).Str("base", base).Str("href", href).Msg("resolved")

	return a.print(href)
}
