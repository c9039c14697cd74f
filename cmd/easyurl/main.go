package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flag struct {
		Config    string
		Output    string
		LogLevel  string
		LogFormat string
	}

	cfg config
	log zerolog.Logger

	// ready is set once the logger is configured and failures are logged by commands.
	ready bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    zerolog.Nop(),
	}

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	if !a.ready {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return 1
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "easyurl",
		Short:         "Decompose, resolve and recompose URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&a.flag.Config, "config", "c", "", "Config file (yaml, toml or json)")
	f.StringVarP(&a.flag.Output, "output", "o", "yaml", "Output format: yaml, json or text")
	f.StringVar(&a.flag.LogLevel, "log-level", "error", "Log level")
	f.StringVar(&a.flag.LogFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(
		a.parseCmd(),
		a.resolveCmd(),
		a.formatCmd(),
		a.queryCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) (err error) {
	a.cfg, err = loadConfig(cmd.Flags(), a.flag.Config)
	if err != nil {
		return err
	}

	a.log, err = newLogger(a.stderr, a.cfg.LogFormat, a.cfg.LogLevel)
	if err != nil {
		return err
	}

	a.ready = true

	a.log.Debug().Str("cmd", cmd.Name()).Str("output", a.cfg.Output).Msg("start")

	return nil
}
