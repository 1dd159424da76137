package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newShowCmd creates the "show" command: build a poset from a description
// and print its text rendering plus summary statistics.
func newShowCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "show <poset.toml>",
		Short: "Build a poset and print its Hasse diagram as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			inst, err := buildInstance(ctx, args[0])
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Built %d elements", inst.Size()))

			fmt.Println(inst.Dump())
			printStats(inst.Size(), instanceCovers(inst), false)

			maxima, minima := instanceExtremes(inst)
			printKeyValue("maxima", strings.Join(maxima, ", "))
			printKeyValue("minima", strings.Join(minima, ", "))

			if check {
				if err := checkInstance(ctx, inst); err != nil {
					printError("Invariant check failed")
					return err
				}
				printSuccess("Invariants hold")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "run the invariant checker after building")
	return cmd
}
