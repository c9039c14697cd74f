package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// print writes v in the configured output format.
// Text output uses the value's String method when it has one.
func (a *app) print(v interface{}) error {
	return printAs(a.stdout, a.cfg.Output, v)
}

func printAs(w io.Writer, format string, v interface{}) (err error) {
	switch format {
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")

		err = e.Encode(v)
	case "yaml":
		e := yaml.NewEncoder(w)
		e.SetIndent(2)

		err = e.Encode(v)
		if err == nil {
			err = e.Close()
		}
	case "text":
		switch v := v.(type) {
		case fmt.Stringer:
			_, err = fmt.Fprintln(w, v.String())
		case string:
			_, err = fmt.Fprintln(w, v)
		default:
			_, err = fmt.Fprintf(w, "%+v\n", v)
		}
	default:
		return errors.Errorf("unsupported output format: %v", format)
	}

	return errors.Wrap(err, "write output")
}
