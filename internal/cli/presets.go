package cli

import (
	"fmt"

	"github.com/rcliao/easeit/internal/preset"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List easing presets",
		Run:   runPresets,
	}

	cmd.Flags().StringP("group", "g", "", "Filter by group: Symmetric, Asymmetric, One-Sided, Advanced, Custom")
	cmd.Flags().Bool("names-only", false, "Only output preset names")

	RootCmd.AddCommand(cmd)
}

func runPresets(cmd *cobra.Command, args []string) {
	group, _ := cmd.Flags().GetString("group")
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	cat, err := loadCatalog()
	if err != nil {
		exitErr("load presets", err)
	}

	list := cat.List(group)
	if namesOnly {
		for _, p := range list {
			fmt.Println(p.Name)
		}
		return
	}

	if textOutput() {
		for _, p := range list {
			switch p.Kind {
			case preset.KindRatio:
				fmt.Printf("%-26s %-10s in %.3f  out %.3f\n", p.Name, p.Group, p.Ratios.EaseIn, p.Ratios.EaseOut)
			default:
				fmt.Printf("%-26s %-10s %d profile points\n", p.Name, p.Group, len(p.Profile))
			}
		}
		return
	}
	if list == nil {
		list = []preset.Preset{}
	}
	printJSON(list)
}
