package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/questmaster/questmaster/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".questmaster"
	envPrefix  = "QUESTMASTER"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// InitConfig reads in the config file and ENV variables if set.
func InitConfig() {
	// Load .env first if present; it's fine when it doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g. QUESTMASTER_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config")

	// The project config dir is checked before home/cwd so a repo-local
	// setup wins over a global one.
	projectConfigDir := viper.GetString("project.rootDir")
	if projectConfigDir == "" {
		projectConfigDir = ".questmaster"
	}

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if _, err := os.Stat(projectConfigDir); !os.IsNotExist(err) {
			viper.AddConfigPath(projectConfigDir)
			viper.SetConfigName(configName)
		} else {
			home, err := os.UserHomeDir()
			cobra.CheckErr(err)
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigName(configName)
		}
	}

	readErr := viper.ReadInConfig()

	viper.SetDefault("project.rootDir", ".questmaster")
	viper.SetDefault("project.dataDir", "data")
	viper.SetDefault("data.file", "quests.json")
	viper.SetDefault("data.format", "json")
	viper.SetDefault("data.backend", "file")
	viper.SetDefault("generator.url", "")
	viper.SetDefault("generator.requestTimeoutSeconds", 30)

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}
	GlobalAppConfig.Config = viper.ConfigFileUsed()

	if readErr == nil {
		if GlobalAppConfig.Verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", GlobalAppConfig.Config)
		}
	} else {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if GlobalAppConfig.Verbose {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", readErr)
		}
	}

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}
}

// GetConfig returns the unmarshaled application configuration.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
