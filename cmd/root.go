package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/questmaster/questmaster/models"
	"github.com/questmaster/questmaster/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "questmaster",
	Short: "QuestMaster turns your tasks into quests and levels you up for finishing them.",
	Long: `QuestMaster is a gamified task tracker. Describe a task in plain
language and it becomes a quest with ordered steps; checking off every
step completes the quest and earns you experience toward your next
level.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.questmaster.yaml or ./.questmaster.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetDataFilePath returns the full path to the persisted state file.
func GetDataFilePath() string {
	config := GetConfig()
	return filepath.Join(config.Project.RootDir, config.Project.DataDir, config.Data.File)
}

// GetStore initializes and returns the configured persistence backend.
func GetStore() (store.Store, error) {
	config := GetConfig()

	var s store.Store
	switch config.Data.Backend {
	case "sqlite":
		s = store.NewSQLiteStore()
	default:
		s = store.NewFileStore()
	}

	dataFilePath := GetDataFilePath()
	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Using %s backend at %s\n", config.Data.Backend, dataFilePath)
	}
	err := s.Initialize(map[string]string{
		"dataFile":       dataFilePath,
		"dataFileFormat": config.Data.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", dataFilePath, err)
	}
	return s, nil
}

// session is the caller-owned state for one command invocation: the
// authoritative quest collection and player stats, loaded once and
// persisted after every mutation.
type session struct {
	store  store.Store
	quests []models.Quest
	stats  models.PlayerStats
}

func openSession() (*session, error) {
	s, err := GetStore()
	if err != nil {
		return nil, err
	}

	quests, err := s.LoadQuests()
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to load quests: %w", err)
	}
	stats, err := s.LoadStats()
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to load player stats: %w", err)
	}
	return &session{store: s, quests: quests, stats: stats}, nil
}

func (s *session) save() error {
	if err := s.store.SaveQuests(s.quests); err != nil {
		return fmt.Errorf("failed to save quests: %w", err)
	}
	if err := s.store.SaveStats(s.stats); err != nil {
		return fmt.Errorf("failed to save player stats: %w", err)
	}
	return nil
}

func (s *session) close() {
	_ = s.store.Close()
}

// resolveQuestID matches a full quest ID or a unique prefix of one, so
// the short IDs shown by list are usable as arguments. Returns "" when
// nothing (or more than one quest) matches.
func resolveQuestID(quests []models.Quest, arg string) string {
	var match string
	for _, q := range quests {
		if q.ID == arg {
			return q.ID
		}
		if strings.HasPrefix(q.ID, arg) {
			if match != "" {
				return "" // ambiguous
			}
			match = q.ID
		}
	}
	return match
}
