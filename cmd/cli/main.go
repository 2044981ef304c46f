package main

import (
	"fmt"
	"os"

	"github.com/de-tools/report-forge/pkg/runtime/terminal"
	"github.com/de-tools/report-forge/pkg/services/source"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Sources: source.NewRegistry(map[string]source.Factory{
			"sample": source.SampleFactory,
			"csv":    source.CSVFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
