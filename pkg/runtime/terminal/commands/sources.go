package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/report-forge/pkg/services/source"
	"github.com/spf13/cobra"
)

type SourcesCmd struct {
	sources source.Registry
}

func NewSourcesCmd(sources source.Registry) *cobra.Command {
	sc := &SourcesCmd{sources: sources}
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List registered dataset sources",
		RunE:  sc.run,
	}
	return cmd
}

func (sc *SourcesCmd) run(cmd *cobra.Command, args []string) error {
	names := sc.sources.ListSources()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No dataset sources registered")
		return nil
	}

	sort.Strings(names)
	fmt.Fprintf(cmd.OutOrStdout(), "Registered sources:\n%s\n", strings.Join(names, "\n"))
	return nil
}
