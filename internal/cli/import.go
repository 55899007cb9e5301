package cli

import (
	"fmt"
	"os"

	"github.com/rcliao/easeit/internal/exchange"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import curves from a YAML or JSON document",
		Long: "Import curves from a document file, or from stdin when no file is given. " +
			"The format follows the file extension; stdin is read as YAML, which also accepts JSON. " +
			"Every curve becomes a new revision in one undoable action.",
		Args: cobra.MaximumNArgs(1),
		Run:  runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var doc *exchange.Document
	var err error
	if len(args) > 0 {
		doc, err = exchange.ReadFile(args[0])
	} else {
		doc, err = exchange.Decode(os.Stdin, exchange.FormatYAML)
	}
	if err != nil {
		exitErr("read document", err)
	}

	// An explicit --doc wins over the document's own name.
	name := doc.Doc
	if docFlag != "" || name == "" {
		name = getDoc()
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	recs, err := s.Import(cmd.Context(), doc, name)
	if err != nil {
		exitErr("import", err)
	}
	logger.Debug("imported", "doc", name, "curves", len(recs))

	fmt.Printf(`{"ok":true,"doc":%q,"imported":%d}`+"\n", name, len(recs))
}
