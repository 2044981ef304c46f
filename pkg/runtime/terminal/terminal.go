package terminal

import (
	"io"
	"os"

	"github.com/de-tools/report-forge/pkg/export/excel"
	"github.com/de-tools/report-forge/pkg/runtime/terminal/commands"
	"github.com/de-tools/report-forge/pkg/runtime/terminal/export"
	"github.com/de-tools/report-forge/pkg/services/source"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	sources  source.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Sources source.Registry
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		sources:  opts.Sources,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report-forge",
		Short: "Spreadsheet report generator",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.sources, excel.NewWriter()))
	cmd.AddCommand(commands.NewPlanCmd(cli.sources, cli.reporter))
	cmd.AddCommand(commands.NewSourcesCmd(cli.sources))

	return cmd
}
