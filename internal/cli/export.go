package cli

import (
	"os"

	"github.com/rcliao/easeit/internal/exchange"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the document's curves",
		Long:  "Export the latest revision of every curve. Writes to -o (format from extension) or stdout.",
		Run:   runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Output file (.yaml, .yml or .json)")
	cmd.Flags().String("as", "json", "Stdout encoding: json or yaml")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")
	as, _ := cmd.Flags().GetString("as")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	doc, err := s.ExportAll(cmd.Context(), getDoc())
	if err != nil {
		exitErr("export", err)
	}

	if out != "" {
		if err := exchange.WriteFile(doc, out); err != nil {
			exitErr("write", err)
		}
		return
	}
	if err := exchange.Encode(os.Stdout, doc, exchange.Format(as)); err != nil {
		exitErr("export", err)
	}
}
