package cli

import (
	"fmt"

	"github.com/rcliao/easeit/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "List animation documents",
		Run:   runDocs,
	}

	RootCmd.AddCommand(cmd)
}

func runDocs(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	docs, err := s.ListDocs(cmd.Context())
	if err != nil {
		exitErr("list docs", err)
	}

	if textOutput() {
		for _, d := range docs {
			fmt.Printf("%-24s %d curves, %d revisions\n", d.Doc, d.Curves, d.Revisions)
		}
		return
	}
	if docs == nil {
		docs = []store.DocStats{}
	}
	printJSON(docs)
}
