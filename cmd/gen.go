package cmd

import (
	"io"

	"github.com/housekit/housekit/explore"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// GenMain is wrapped by NewGenCommand and only exported for testing purposes.
var GenMain *explore.GenMain

// NewGenCommand returns a new cobra command wrapping GenMain.
func NewGenCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	GenMain = explore.NewGenMain()
	GenMain.Out = stdout
	genCommand := &cobra.Command{
		Use:   "gen",
		Short: "Generate synthetic sale data as CSV.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenMain.Run()
		},
	}
	flags := genCommand.Flags()
	if err := commandeer.Flags(flags, GenMain); err != nil {
		panic(err)
	}
	return genCommand
}

func init() {
	subcommandFns["gen"] = NewGenCommand
}
