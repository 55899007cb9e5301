package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Revert the newest action of the document",
		Run:   runUndo,
	}

	RootCmd.AddCommand(cmd)
}

func runUndo(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := s.Undo(cmd.Context(), getDoc())
	if err != nil {
		exitErr("undo", err)
	}

	if textOutput() {
		fmt.Printf("undid %s on %s\n", res.Action, strings.Join(res.Paths, ", "))
		return
	}
	printJSON(res)
}
