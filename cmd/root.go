package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "passmeter",
	Short: "PassMeter - Password Strength Meter service",
	Long: `PassMeter scores the strength of candidate passwords against a fixed
rule set and generates random passwords guaranteed to satisfy every
character-class rule. It exposes the scorer and generator over a small
HTTP and WebSocket API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is .env)")
}
