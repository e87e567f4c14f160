package cmd

import (
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	cpuProfile bool

	profileStop func()
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve and inspect 9x9 Sudoku puzzles",
	Long: `sudoku reads puzzles as 81-character strings ('.' for empty cells,
'1'-'9' for givens) and solves, checks or analyzes them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cpuProfile {
			profileStop = profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profileStop != nil {
			profileStop()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is .sudoku.yaml)")
	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "cpuprofile", false, "Write a CPU profile to the working directory")
}

// initConfig loads the optional config file and SUDOKU_* environment
// variables. Flags set on the command line still win.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".sudoku")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("sudoku")
	viper.AutomaticEnv()

	// The config file is optional; a missing file is not an error.
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
