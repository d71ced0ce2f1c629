package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	fleeks "github.com/fleeks/fleeks-sdk-go"
)

var (
	wsTemplate  string
	wsLifecycle string
)

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Workspace management commands",
}

var wsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new workspace",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		opts := &fleeks.CreateWorkspaceOptions{
			Name:     args[0],
			Template: wsTemplate,
		}
		if cfg, ok := lifecyclePreset(wsLifecycle); ok {
			opts.Lifecycle = &cfg
		}

		ws, err := client.Workspaces.Create(context.Background(), opts)
		if err != nil {
			fatal(err)
		}

		fmt.Println(successStyle.Render("Workspace created."))
		printResult(ws)
	},
}

var wsGetCmd = &cobra.Command{
	Use:   "get <workspace-id>",
	Short: "Get workspace details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		ws, err := client.Workspaces.Get(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		printResult(ws)
	},
}

var wsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		list, err := client.Workspaces.List(context.Background())
		if err != nil {
			fatal(err)
		}
		printResult(list)
	},
}

var wsDeleteCmd = &cobra.Command{
	Use:   "delete <workspace-id>",
	Short: "Permanently delete a workspace",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Delete workspace %s? This cannot be undone.", args[0])) {
			fmt.Println(dimStyle.Render("Aborted."))
			return
		}

		client := newClient()
		if err := client.Workspaces.Delete(context.Background(), args[0]); err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("Workspace deleted."))
	},
}

var wsPreviewCmd = &cobra.Command{
	Use:   "preview <workspace-id>",
	Short: "Show the workspace preview URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		info, err := client.Workspaces.PreviewURL(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Println(info.PreviewURL)
	},
}

// confirm asks the user before a destructive operation. The --yes flag
// skips the prompt for scripting.
func confirm(title string) bool {
	if yes {
		return true
	}

	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false
	}
	return ok
}

func init() {
	wsCreateCmd.Flags().StringVarP(&wsTemplate, "template", "t", "", "Workspace template (node, python, go, ...)")
	wsCreateCmd.Flags().StringVar(&wsLifecycle, "lifecycle", "", "Lifecycle preset (quick-test, development, agent-task, always-on)")

	workspaceCmd.AddCommand(wsCreateCmd, wsGetCmd, wsListCmd, wsDeleteCmd, wsPreviewCmd)
	rootCmd.AddCommand(workspaceCmd)
}
