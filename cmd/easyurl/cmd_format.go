package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nikand.dev/go/easyurl"
)

func (a *app) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [file|-]",
		Short: "Compose a URL from a YAML or JSON field mapping",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) != 0 {
				name = args[0]
			}

			return a.format(name)
		},
	}
}

func (a *app) format(name string) error {
	data, err := a.readInput(name)
	if err != nil {
		a.log.Error().Err(err).Str("file", name).Msg("read fields")
		return err
	}

	// JSON is a subset of YAML, so one decoder serves both.
	var f easyurl.Fields

	err = yaml.Unmarshal(data, &f)
	if err != nil {
		err = errors.Wrapf(err, "decode fields from %v", name)
		a.log.Error().Err(err).Str("file", name).Msg("format")
		return err
	}

	href := easyurl.New(f).String()

	a.log.Debug().Str("file", name).Str("href", href).Msg("formatted")

	return a.print(href)
}

func (a *app) readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(a.stdin)
		return data, errors.Wrap(err, "read stdin")
	}

	data, err := os.ReadFile(name)

	return data, errors.Wrapf(err, "read %v", name)
}
