package cmd

import (
	"io"

	"github.com/housekit/housekit/csv"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// TransformMain is wrapped by NewTransformCommand and only exported for
// testing purposes.
var TransformMain *csv.Main

// NewTransformCommand returns a new cobra command wrapping TransformMain.
func NewTransformCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	TransformMain = csv.NewMain()
	transformCommand := &cobra.Command{
		Use:   "transform",
		Short: "Log-transform the outcome column of a CSV file.",
		Long: `Read a CSV file, replace the named strictly positive column with its
base-10 logarithm, and write the result as CSV. Fails without output if the
column is missing, non-numeric, or contains a zero or negative value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return TransformMain.Run()
		},
	}
	flags := transformCommand.Flags()
	if err := commandeer.Flags(flags, TransformMain); err != nil {
		panic(err)
	}
	return transformCommand
}

func init() {
	subcommandFns["transform"] = NewTransformCommand
}
