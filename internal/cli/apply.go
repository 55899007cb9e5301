package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "apply <preset>",
		Short: "Apply an easing preset to the selected keyframes",
		Long: "Apply an easing preset to every curve of the document with at least two selected keyframes. " +
			"All touched curves are committed as one undoable action. Run 'easeit presets' for names.",
		Args: cobra.MinimumNArgs(1),
		Run:  runApply,
	}

	cmd.Flags().StringP("path", "p", "", "Only curves whose data path contains this substring")

	RootCmd.AddCommand(cmd)
}

func runApply(cmd *cobra.Command, args []string) {
	path, _ := cmd.Flags().GetString("path")
	name := strings.Join(args, " ")

	table, err := loadTable()
	if err != nil {
		exitErr("load presets", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := applyPreset(cmd.Context(), s, table, getDoc(), path, name)
	if res.Level != "" {
		if textOutput() {
			fmt.Printf("%s: %s\n", res.Level, res.Message)
		} else {
			printJSON(res)
		}
	}
	if err != nil {
		exitErr("apply", err)
	}
}
