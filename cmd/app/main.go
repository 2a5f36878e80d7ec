package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

// @title           Grow A Garden Bot API
// @version         1.0
// @description     Messenger webhook and operational endpoints of the Grow A Garden stock bot.
// @BasePath        /

// @tag.name webhook
// @tag.description Messenger platform callbacks

// @tag.name health
// @tag.description Liveness, readiness and uptime

const serviceName = "gag-stock-bot"

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "gagbot",
	Short: "Grow A Garden stock bot for Facebook Messenger",
	Long: `gagbot listens to the Grow A Garden stock feed and notifies Messenger
users about restocks of the items they watch.

Run without a subcommand to start the bot.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook server and the feed listener",
	RunE:  runServe,
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Print the registered users from the configured store",
	RunE:  runUsers,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gagbot %s\nCommit: %s\nBuilt: %s\n", Version, Commit, BuildTime)
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"gagbot version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging (overrides DEBUG)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
