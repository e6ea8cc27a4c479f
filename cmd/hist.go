package cmd

import (
	"io"

	"github.com/housekit/housekit/explore"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// HistMain is wrapped by NewHistCommand and only exported for testing
// purposes.
var HistMain *explore.HistMain

// NewHistCommand returns a new cobra command wrapping HistMain.
func NewHistCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	HistMain = explore.NewHistMain()
	HistMain.Out = stdout
	histCommand := &cobra.Command{
		Use:   "hist",
		Short: "Render a text histogram of a numeric column.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return HistMain.Run()
		},
	}
	flags := histCommand.Flags()
	if err := commandeer.Flags(flags, HistMain); err != nil {
		panic(err)
	}
	return histCommand
}

func init() {
	subcommandFns["hist"] = NewHistCommand
}
