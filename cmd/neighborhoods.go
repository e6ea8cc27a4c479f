package cmd

import (
	"io"

	"github.com/housekit/housekit/explore"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// NeighborhoodsMain is wrapped by NewNeighborhoodsCommand and only exported
// for testing purposes.
var NeighborhoodsMain *explore.NeighborhoodsMain

// NewNeighborhoodsCommand returns a new cobra command wrapping
// NeighborhoodsMain.
func NewNeighborhoodsCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	NeighborhoodsMain = explore.NewNeighborhoodsMain()
	NeighborhoodsMain.Out = stdout
	hoodsCommand := &cobra.Command{
		Use:   "neighborhoods",
		Short: "Summarize a numeric column per neighborhood or geohash cell.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return NeighborhoodsMain.Run()
		},
	}
	flags := hoodsCommand.Flags()
	if err := commandeer.Flags(flags, NeighborhoodsMain); err != nil {
		panic(err)
	}
	return hoodsCommand
}

func init() {
	subcommandFns["neighborhoods"] = NewNeighborhoodsCommand
}
