package main

import (
	"github.com/spf13/cobra"

	"nikand.dev/go/easyurl"
)

func (a *app) queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <search>",
		Short: "Decode a query string into an ordered mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(args[0])
		},
	}
}

func (a *app) query(search string) error {
	q, err := easyurl.ParseQuery(search)
	if err != nil {
		a.log.Error().Err(err).Str("search", search).Msg("query")
		return err
	}

	a.log.Debug().Str("search", search).Int("params", len(q)).Msg("decoded")

	return a.print(q)
}
