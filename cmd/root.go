// Package cmd is for command line interactions with the fishprobes application
package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "fishprobes",
	Short: `Design single molecule FISH probe sets against a target RNA.
Probes are selected together, by thermodynamic fit and spacing, rather than one at a time`,
	Version: "0.2.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig reads in an optional settings file and ENV variables.
// Command line flags, bound to viper in each command's init, win over both.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".fishprobes")
	}

	viper.SetEnvPrefix("FISHPROBES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("using settings file %s", filepath.Base(viper.ConfigFileUsed()))
	}
}
