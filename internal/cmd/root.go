package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hackmatch/teamforge/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "teamforge",
	Short: "Hackathon team formation from a participant roster",
	Long: `Teamforge reads a roster of hackathon registrants and partitions it
into balanced teams, honoring friend requests, shared interests,
schedule availability and experience/skill balance. Every team comes
with an explanation of why its members were grouped together.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/teamforge/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/teamforge")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TEAMFORGE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TEAMFORGE_MATCHING_MAX_TEAM_SIZE for matching.max_team_size
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
