package cli

import (
	"fmt"
	"strings"

	"github.com/rcliao/easeit/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search curves by data path",
		Long:  "Find curves whose data path contains the query, in the current document or with --all-docs everywhere.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().Bool("all-docs", false, "Search every document")
	cmd.Flags().IntP("limit", "l", 50, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	allDocs, _ := cmd.Flags().GetBool("all-docs")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	doc := getDoc()
	if allDocs {
		doc = ""
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Doc:   doc,
		Query: query,
		Limit: limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if textOutput() {
		for _, r := range results {
			fmt.Printf("%s/%s v%d\n", r.Doc, r.Path, r.Version)
		}
		return
	}
	if len(results) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(results)
}
