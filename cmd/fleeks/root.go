package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	fleeks "github.com/fleeks/fleeks-sdk-go"
)

var (
	baseURL string
	output  string
	debug   bool
	yes     bool
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

var rootCmd = &cobra.Command{
	Use:   "fleeks",
	Short: "Fleeks CLI - manage cloud workspaces, agents, embeds, and deployments",
	Long: `fleeks is the command line interface for the Fleeks cloud-workspace
platform. It wraps the same API as the Go SDK: workspaces, agents,
containers, embeds, and deployments.

Authentication uses FLEEKS_API_KEY from the environment or a .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (defaults to FLEEKS_BASE_URL or production)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fleeks %s\n", fleeks.Version)
	},
}

// newClient builds an SDK client from the environment plus CLI flags.
func newClient() *fleeks.Client {
	var opts []fleeks.ClientOption
	if baseURL != "" {
		opts = append(opts, fleeks.WithBaseURL(baseURL))
	}
	if debug {
		opts = append(opts, fleeks.WithLogger(newDebugLogger()))
	}

	client, err := fleeks.NewClientFromEnv(opts...)
	if err != nil {
		fatal(err)
	}
	return client
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
	os.Exit(1)
}
