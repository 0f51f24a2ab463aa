// Command lightup-probe prints which wrapper shapes and members each syntax
// version supports.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/lightup"
	"github.com/ygrebnov/lightup/host"
	"github.com/ygrebnov/lightup/syntax"
	"github.com/ygrebnov/lightup/wrappers"
)

type report struct {
	Version string              `json:"version" yaml:"version"`
	Shapes  []lightup.ShapeInfo `json:"shapes" yaml:"shapes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lightup-probe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	version := fs.String("version", "", "syntax version to probe (default: every version)")
	format := fs.String("format", "yaml", "output format: yaml or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "lightup-probe: unexpected arguments %q\n", fs.Args())
		fs.Usage()
		return 2
	}
	if *format != "yaml" && *format != "json" {
		fmt.Fprintf(stderr, "lightup-probe: unknown format %q\n", *format)
		fs.Usage()
		return 2
	}

	versions := syntax.Versions()
	if *version != "" {
		versions = []string{*version}
	}

	reports, err := probe(versions)
	if err != nil {
		fmt.Fprintln(stderr, "lightup-probe:", err)
		return 1
	}
	if err := write(stdout, *format, reports); err != nil {
		fmt.Fprintln(stderr, "lightup-probe:", err)
		return 1
	}
	return 0
}

// probe loads each version in turn and restores the previously loaded host.
func probe(versions []string) ([]report, error) {
	prev := host.Loaded()
	defer host.Load(prev)

	reports := make([]report, 0, len(versions))
	for _, v := range versions {
		if _, err := syntax.Use(v); err != nil {
			return nil, err
		}
		reports = append(reports, report{Version: v, Shapes: wrappers.Describe()})
	}
	return reports, nil
}

func write(w io.Writer, format string, reports []report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}
