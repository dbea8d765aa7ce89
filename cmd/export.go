package cmd

import (
	"fmt"
	"os"

	"github.com/questmaster/questmaster/catalog"
	"github.com/questmaster/questmaster/internal/ui"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

// exportCmd writes the quest log to stdout or a file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export quests as JSON or CSV",
	Long: `Export the quest log. JSON preserves everything and can be imported
back; CSV is a flat summary and drops quest steps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		data, err := catalog.Export(sess.quests, exportFormat)
		if err != nil {
			return err
		}

		if exportOut == "" {
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(exportOut, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render(
			fmt.Sprintf("Exported %d quests to %s", len(sess.quests), exportOut)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", catalog.FormatJSON, "export format (json or csv)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
}
