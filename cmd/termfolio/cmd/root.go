// Package cmd contains all CLI commands for termfolio.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"termfolio/internal/profile"
	"termfolio/internal/tui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "A single-page portfolio that lives in your terminal",
	Long: `termfolio renders a personal portfolio as a scrolling page in the
terminal: an animated hero banner, about, skills, projects, experience and a
contact form, navigated from a sidebar of section anchors.

Content comes from profile.yaml in the config directory; run
'termfolio init' to create an editable template. Without a profile the
built-in demo profile is shown.

Running 'termfolio' without arguments launches the TUI.`,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/termfolio)")
	rootCmd.Flags().String("theme", "dark", "starting theme (dark|light)")
	rootCmd.Flags().Bool("no-anim", false, "disable animations; render the page fully visible")

	viper.BindPFlag("theme", rootCmd.Flags().Lookup("theme"))
	viper.BindPFlag("no_anim", rootCmd.Flags().Lookup("no-anim"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "termfolio"))
	}

	viper.SetEnvPrefix("TERMFOLIO")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadProfile returns the user's profile.yaml when present, the built-in
// demo profile otherwise. A profile that exists but fails validation is an
// error rather than a silent fallback.
func loadProfile() (*profile.Profile, error) {
	path := filepath.Join(getConfigDir(), profile.FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return profile.Default(), nil
	}
	return profile.Load(path)
}

// runTUI launches the portfolio page.
func runTUI(cmd *cobra.Command, args []string) error {
	prof, err := loadProfile()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	app, err := tui.NewApp(prof, tui.Options{
		Theme:  viper.GetString("theme"),
		NoAnim: viper.GetBool("no_anim"),
	})
	if err != nil {
		return fmt.Errorf("building UI: %w", err)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
