package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	posetio "github.com/matzehuels/posetviz/pkg/io"
)

// newExportCmd creates the "export" command: build a poset and write a JSON
// snapshot of its members and cover edges.
func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <poset.toml>",
		Short: "Export a poset snapshot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			inst, err := buildInstance(ctx, args[0])
			if err != nil {
				return err
			}

			meta := posetio.Meta{Name: inst.Name, Ordering: inst.Ordering.Name}
			if inst.Ints != nil {
				err = posetio.ExportJSON(inst.Ints, meta, output)
			} else {
				err = posetio.ExportJSON(inst.Strings, meta, output)
			}
			if err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Exported %d elements", inst.Size()))
			printFile(output)
			printStats(inst.Size(), instanceCovers(inst), false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "poset.json", "output file")
	return cmd
}
