package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Set keyframe selection by frame range",
		Long: "Select the keyframes whose frame lies in [--from, --to] on every matching curve. " +
			"Other keyframes are deselected unless --add is given.",
		Run: runSelect,
	}

	cmd.Flags().StringP("path", "p", "", "Only curves whose data path contains this substring")
	cmd.Flags().Float64("from", 0, "First frame (default: no lower bound)")
	cmd.Flags().Float64("to", 0, "Last frame (default: no upper bound)")
	cmd.Flags().Bool("add", false, "Extend the current selection")
	cmd.Flags().Bool("none", false, "Deselect everything")

	RootCmd.AddCommand(cmd)
}

func runSelect(cmd *cobra.Command, args []string) {
	path, _ := cmd.Flags().GetString("path")

	sel := allFrames()
	if cmd.Flags().Changed("from") {
		sel.From, _ = cmd.Flags().GetFloat64("from")
	}
	if cmd.Flags().Changed("to") {
		sel.To, _ = cmd.Flags().GetFloat64("to")
	}
	sel.Add, _ = cmd.Flags().GetBool("add")
	sel.None, _ = cmd.Flags().GetBool("none")

	if sel.From > sel.To {
		exitErr("select", fmt.Errorf("--from %g is after --to %g", sel.From, sel.To))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := selectKeyframes(cmd.Context(), s, getDoc(), path, sel)
	if err != nil {
		exitErr("select", err)
	}

	if textOutput() {
		fmt.Printf("%d keyframes selected, %d curves changed\n", res.Selected, len(res.Committed))
		return
	}
	printJSON(res)
}
