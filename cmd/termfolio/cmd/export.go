package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"termfolio/internal/resume"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the profile as a Markdown résumé",
	Long: `Export renders the profile as a Markdown résumé.

By default the raw Markdown goes to stdout, ready for pandoc or a gist.
With --pretty it is rendered for the terminal instead.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "write to a file instead of stdout")
	exportCmd.Flags().Bool("pretty", false, "render for the terminal instead of raw Markdown")
}

func runExport(cmd *cobra.Command, args []string) error {
	prof, err := loadProfile()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	md := resume.Markdown(prof)

	pretty, _ := cmd.Flags().GetBool("pretty")
	if pretty {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("building renderer: %w", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("rendering résumé: %w", err)
		}
		md = out
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		fmt.Print(md)
		return nil
	}

	if err := os.WriteFile(outPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("writing résumé: %w", err)
	}
	fmt.Printf("Wrote %s\n", outPath)
	return nil
}
