package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	fleeks "github.com/fleeks/fleeks-sdk-go"
)

var (
	deployEnvironment string
	deployEnvVars     []string
	deployWatch       bool
	deployProject     string
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deployment commands",
}

var deployCreateCmd = &cobra.Command{
	Use:   "create <project-id>",
	Short: "Deploy a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		envVars := make(map[string]string, len(deployEnvVars))
		for _, kv := range deployEnvVars {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				fatal(fmt.Errorf("invalid --env value %q, expected KEY=VALUE", kv))
			}
			envVars[k] = v
		}

		client := newClient()
		ctx := context.Background()

		resp, err := client.Deploy.Create(ctx, args[0], &fleeks.DeployOptions{
			Environment: deployEnvironment,
			EnvVars:     envVars,
		})
		if err != nil {
			fatal(err)
		}

		fmt.Printf("Deployment %d started (%s)\n", resp.DeploymentID, resp.Environment)

		if deployWatch {
			watchDeployment(ctx, client, resp.DeploymentID)
		}
	},
}

var deployStatusCmd = &cobra.Command{
	Use:   "status <deployment-id>",
	Short: "Show deployment status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		status, err := client.Deploy.Status(context.Background(), parseDeployID(args[0]))
		if err != nil {
			fatal(err)
		}
		printResult(status)
	},
}

var deployLogsCmd = &cobra.Command{
	Use:   "logs <deployment-id>",
	Short: "Print deployment logs",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		id := parseDeployID(args[0])

		if deployWatch {
			watchDeployment(context.Background(), client, id)
			return
		}

		logs, err := client.Deploy.Logs(context.Background(), id)
		if err != nil {
			fatal(err)
		}
		fmt.Print(logs.Logs)
	},
}

var deployListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent deployments",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		items, err := client.Deploy.List(context.Background(), &fleeks.ListDeploymentsOptions{
			ProjectID: deployProject,
		})
		if err != nil {
			fatal(err)
		}
		printResult(items)
	},
}

var deployRollbackCmd = &cobra.Command{
	Use:   "rollback <deployment-id>",
	Short: "Roll back to the previous successful deployment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Roll back deployment %s?", args[0])) {
			fmt.Println(dimStyle.Render("Aborted."))
			return
		}

		client := newClient()
		result, err := client.Deploy.Rollback(context.Background(), parseDeployID(args[0]))
		if err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("Rolled back to ") + result.Revision)
	},
}

var deployDeleteCmd = &cobra.Command{
	Use:   "delete <deployment-id>",
	Short: "Delete a deployment and free its URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Delete deployment %s? Its URL will stop serving.", args[0])) {
			fmt.Println(dimStyle.Render("Aborted."))
			return
		}

		client := newClient()
		result, err := client.Deploy.Delete(context.Background(), parseDeployID(args[0]))
		if err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("Deployment deleted: ") + result.ServiceName)
	},
}

func watchDeployment(ctx context.Context, client *fleeks.Client, id int) {
	events, err := client.Deploy.StreamLogs(ctx, id)
	if err != nil {
		fatal(err)
	}

	for ev := range events {
		switch {
		case ev.Error != "":
			fmt.Println(errorStyle.Render(ev.Error))
		case ev.Stage != "":
			fmt.Printf("[%3d%%] %s %s\n", ev.Percent, ev.Stage, ev.Message)
		default:
			fmt.Println(ev.Message)
		}
	}

	status, err := client.Deploy.Status(ctx, id)
	if err != nil {
		fatal(err)
	}
	if status.URL != "" {
		fmt.Println(successStyle.Render("Live at: ") + status.URL)
	}
}

func parseDeployID(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil {
		fatal(fmt.Errorf("invalid deployment id %q", s))
	}
	return id
}

func init() {
	deployCreateCmd.Flags().StringVar(&deployEnvironment, "environment", "production", "Target environment")
	deployCreateCmd.Flags().StringSliceVarP(&deployEnvVars, "env", "e", nil, "Environment variable KEY=VALUE (repeatable)")
	deployCreateCmd.Flags().BoolVarP(&deployWatch, "watch", "W", false, "Stream progress until the deployment finishes")
	deployLogsCmd.Flags().BoolVarP(&deployWatch, "watch", "W", false, "Stream live logs")
	deployListCmd.Flags().StringVar(&deployProject, "project", "", "Filter by project ID")

	deployCmd.AddCommand(deployCreateCmd, deployStatusCmd, deployLogsCmd,
		deployListCmd, deployRollbackCmd, deployDeleteCmd)
	rootCmd.AddCommand(deployCmd)
}
