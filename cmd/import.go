package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/questmaster/questmaster/catalog"
	"github.com/questmaster/questmaster/internal/ui"
	"github.com/questmaster/questmaster/models"
	"github.com/spf13/cobra"
)

var importFormat string

// importCmd merges quests from an exported file into the log.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import quests from a JSON or CSV export",
	Long: `Import quests from a previous export. Imported quests get fresh
identifiers and are appended to the log; entries that fail validation
are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		format := importFormat
		if format == "" {
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".csv":
				format = catalog.FormatCSV
			default:
				format = catalog.FormatJSON
			}
		}

		imported := catalog.Import(data, format)
		if len(imported) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleWarning.Render("Nothing to import."))
			return nil
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		sess.quests = append(sess.quests, imported...)
		for _, q := range imported {
			if q.Status == models.StatusActive {
				sess.stats.ActiveTasks++
			}
		}
		if err := sess.save(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render(
			fmt.Sprintf("Imported %d quests from %s", len(imported), args[0])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importFormat, "format", "", "import format (json or csv, default inferred from extension)")
}
