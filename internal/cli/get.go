package cli

import (
	"fmt"

	"github.com/rcliao/easeit/internal/model"
	"github.com/rcliao/easeit/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieve a curve",
		Run:   runGet,
	}

	cmd.Flags().StringP("path", "p", "", "Curve data path (required)")
	cmd.Flags().Bool("history", false, "Return all versions (newest first)")
	cmd.Flags().Int("version", 0, "Specific version number")

	cmd.MarkFlagRequired("path")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	path, _ := cmd.Flags().GetString("path")
	history, _ := cmd.Flags().GetBool("history")
	version, _ := cmd.Flags().GetInt("version")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	recs, err := s.Get(cmd.Context(), store.GetParams{
		Doc:     getDoc(),
		Path:    path,
		History: history,
		Version: version,
	})
	if err != nil {
		exitErr("get", err)
	}

	if textOutput() {
		for _, r := range recs {
			printCurveText(r)
		}
		return
	}
	if history || len(recs) > 1 {
		printJSON(recs)
	} else {
		printJSON(recs[0])
	}
}

func printCurveText(r model.CurveRecord) {
	fmt.Printf("%s/%s v%d (%s)\n", r.Doc, r.Path, r.Version, r.Action)
	for _, k := range r.Keyframes {
		mark := " "
		if k.Selected {
			mark = "*"
		}
		fmt.Printf("  %s %-18s L%s %-12s R%s %-12s %s\n", mark, k.Co,
			k.HandleLeft, k.HandleLeftType, k.HandleRight, k.HandleRightType, k.Interpolation)
	}
}
