package cmd

import (
	"io"

	"github.com/housekit/housekit/explore"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// SummaryMain is wrapped by NewSummaryCommand and only exported for testing
// purposes.
var SummaryMain *explore.SummaryMain

// NewSummaryCommand returns a new cobra command wrapping SummaryMain.
func NewSummaryCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	SummaryMain = explore.NewSummaryMain()
	SummaryMain.Out = stdout
	summaryCommand := &cobra.Command{
		Use:   "summary",
		Short: "Describe a numeric column of a housing dataset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return SummaryMain.Run()
		},
	}
	flags := summaryCommand.Flags()
	if err := commandeer.Flags(flags, SummaryMain); err != nil {
		panic(err)
	}
	return summaryCommand
}

func init() {
	subcommandFns["summary"] = NewSummaryCommand
}
