package cli

import (
	"fmt"

	"github.com/rcliao/easeit/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List curves",
		Long:  "List the latest revision of every curve in the document. Use --all-docs to list every document.",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max results (0 for all)")
	cmd.Flags().Bool("all-docs", false, "List curves of every document")
	cmd.Flags().Bool("paths-only", false, "Only output doc/path pairs")

	RootCmd.AddCommand(cmd)
}

type curveSummary struct {
	Doc       string `json:"doc"`
	Path      string `json:"path"`
	Version   int    `json:"version"`
	Keyframes int    `json:"keyframes"`
	Selected  int    `json:"selected"`
	Action    string `json:"action"`
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	allDocs, _ := cmd.Flags().GetBool("all-docs")
	pathsOnly, _ := cmd.Flags().GetBool("paths-only")

	doc := getDoc()
	if allDocs {
		doc = ""
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	recs, err := s.List(cmd.Context(), store.ListParams{Doc: doc, Limit: limit})
	if err != nil {
		exitErr("list", err)
	}

	if pathsOnly {
		for _, r := range recs {
			fmt.Printf("%s/%s\n", r.Doc, r.Path)
		}
		return
	}

	out := make([]curveSummary, 0, len(recs))
	for _, r := range recs {
		sum := curveSummary{Doc: r.Doc, Path: r.Path, Version: r.Version, Keyframes: len(r.Keyframes), Action: r.Action}
		for _, k := range r.Keyframes {
			if k.Selected {
				sum.Selected++
			}
		}
		out = append(out, sum)
	}

	if textOutput() {
		for _, c := range out {
			fmt.Printf("%s/%s v%d  %d keyframes, %d selected\n", c.Doc, c.Path, c.Version, c.Keyframes, c.Selected)
		}
		return
	}
	printJSON(out)
}
