package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	fleeks "github.com/fleeks/fleeks-sdk-go"
	"github.com/fleeks/fleeks-sdk-go/models"
)

var (
	embedTemplate string
	embedInactive bool
	embedSearch   string
	embedPeriod   string
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embed management commands",
}

var embedCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new embed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		info, err := client.Embeds.Create(context.Background(), &fleeks.CreateEmbedOptions{
			Name:     args[0],
			Template: models.EmbedTemplate(embedTemplate),
		})
		if err != nil {
			fatal(err)
		}

		fmt.Println(successStyle.Render("Embed created."))
		fmt.Println("URL: " + info.PublicURL())
		fmt.Println(dimStyle.Render(info.Iframe()))
	},
}

var embedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List embeds",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		embeds, err := client.Embeds.List(context.Background(), &fleeks.ListEmbedsOptions{
			IncludeInactive: embedInactive,
			Template:        models.EmbedTemplate(embedTemplate),
			Search:          embedSearch,
		})
		if err != nil {
			fatal(err)
		}
		printResult(embeds)
	},
}

var embedGetCmd = &cobra.Command{
	Use:   "get <embed-id>",
	Short: "Get embed details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		info, err := client.Embeds.Get(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		printResult(info)
	},
}

var embedDeleteCmd = &cobra.Command{
	Use:   "delete <embed-id>",
	Short: "Permanently delete an embed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Delete embed %s? All sessions will be terminated.", args[0])) {
			fmt.Println(dimStyle.Render("Aborted."))
			return
		}

		client := newClient()
		if err := client.Embeds.Delete(context.Background(), args[0]); err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("Embed deleted."))
	},
}

var embedPauseCmd = &cobra.Command{
	Use:   "pause <embed-id>",
	Short: "Pause an embed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		change, err := client.Embeds.Pause(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Embed %s: %s -> %s\n", change.ID, change.PreviousStatus, change.Status)
	},
}

var embedResumeCmd = &cobra.Command{
	Use:   "resume <embed-id>",
	Short: "Resume a paused embed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		change, err := client.Embeds.Resume(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Embed %s: %s -> %s\n", change.ID, change.PreviousStatus, change.Status)
	},
}

var embedAnalyticsCmd = &cobra.Command{
	Use:   "analytics [embed-id]",
	Short: "Show embed analytics (all embeds when no ID given)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		ctx := context.Background()

		if len(args) == 0 {
			total, err := client.Embeds.TotalAnalytics(ctx, embedPeriod)
			if err != nil {
				fatal(err)
			}
			printJSON(total)
			return
		}

		analytics, err := client.Embeds.Analytics(ctx, args[0], embedPeriod)
		if err != nil {
			fatal(err)
		}
		printJSON(analytics)
	},
}

func init() {
	embedCreateCmd.Flags().StringVarP(&embedTemplate, "template", "t", "react", "Embed template")
	embedListCmd.Flags().StringVarP(&embedTemplate, "template", "t", "", "Filter by template")
	embedListCmd.Flags().BoolVar(&embedInactive, "all", false, "Include paused and archived embeds")
	embedListCmd.Flags().StringVar(&embedSearch, "search", "", "Search by name")
	embedAnalyticsCmd.Flags().StringVar(&embedPeriod, "period", "30d", "Analytics period (7d, 30d, 90d, 1y)")

	embedCmd.AddCommand(embedCreateCmd, embedListCmd, embedGetCmd, embedDeleteCmd,
		embedPauseCmd, embedResumeCmd, embedAnalyticsCmd)
	rootCmd.AddCommand(embedCmd)
}
