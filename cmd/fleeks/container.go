package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fleeks "github.com/fleeks/fleeks-sdk-go"
	"github.com/fleeks/fleeks-sdk-go/models"
)

var (
	execWorkdir string
	execTimeout int
)

var containerCmd = &cobra.Command{
	Use:     "container",
	Aliases: []string{"c"},
	Short:   "Container and lifecycle commands",
}

var containerStatsCmd = &cobra.Command{
	Use:   "stats <container-id>",
	Short: "Show container resource usage",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		stats, err := client.Containers.Stats(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		printResult(stats)
	},
}

var containerExecCmd = &cobra.Command{
	Use:   "exec <container-id> <command>",
	Short: "Execute a command in a container",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		result, err := client.Containers.Exec(context.Background(), args[0], args[1], &fleeks.ExecOptions{
			WorkingDir:     execWorkdir,
			TimeoutSeconds: execTimeout,
		})
		if err != nil {
			fatal(err)
		}

		fmt.Print(result.Stdout)
		if result.Stderr != "" {
			fmt.Fprint(os.Stderr, result.Stderr)
		}
		if result.TimedOut {
			fmt.Fprintln(os.Stderr, errorStyle.Render("command timed out"))
		}
		os.Exit(result.ExitCode)
	},
}

var containerRestartCmd = &cobra.Command{
	Use:   "restart <container-id>",
	Short: "Restart a container",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Restart container %s? Running processes will be interrupted.", args[0])) {
			fmt.Println(dimStyle.Render("Aborted."))
			return
		}

		client := newClient()
		result, err := client.Containers.Restart(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("Container restarting: ") + result.Status)
	},
}

var containerHeartbeatCmd = &cobra.Command{
	Use:   "heartbeat <container-id>",
	Short: "Send a heartbeat to reset the idle timer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		resp, err := client.Containers.Heartbeat(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Heartbeat acknowledged, next timeout at %s\n", resp.NextTimeoutAt)
	},
}

var containerExtendCmd = &cobra.Command{
	Use:   "extend <container-id> <minutes>",
	Short: "Extend the container timeout",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var minutes int
		if _, err := fmt.Sscanf(args[1], "%d", &minutes); err != nil {
			fatal(fmt.Errorf("invalid minutes value %q", args[1]))
		}

		client := newClient()
		resp, err := client.Containers.ExtendTimeout(context.Background(), args[0], minutes)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Extended by %d minutes, new timeout at %s\n", resp.AddedMinutes, resp.NewTimeoutAt)
	},
}

var containerHibernateCmd = &cobra.Command{
	Use:   "hibernate <container-id>",
	Short: "Hibernate a container, preserving state",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		resp, err := client.Containers.Hibernate(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("Container hibernating: ") + resp.Status)
	},
}

var containerWakeCmd = &cobra.Command{
	Use:   "wake <container-id>",
	Short: "Wake a hibernated container",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		resp, err := client.Containers.Wake(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("Container waking: ") + resp.Status)
	},
}

var containerLifecycleCmd = &cobra.Command{
	Use:   "lifecycle <container-id> [preset]",
	Short: "Show or configure the container lifecycle",
	Long: `With one argument, shows the container's lifecycle status. With a
preset name (quick-test, development, agent-task, always-on) as the
second argument, applies that configuration.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		ctx := context.Background()

		if len(args) == 1 {
			status, err := client.Containers.LifecycleStatus(ctx, args[0])
			if err != nil {
				fatal(err)
			}
			printResult(status)
			return
		}

		cfg, ok := lifecyclePreset(args[1])
		if !ok {
			fatal(fmt.Errorf("unknown lifecycle preset %q", args[1]))
		}
		status, err := client.Containers.ConfigureLifecycle(ctx, args[0], cfg)
		if err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("Lifecycle updated."))
		printResult(status)
	},
}

func lifecyclePreset(name string) (models.LifecycleConfig, bool) {
	switch name {
	case "quick-test":
		return models.QuickTestLifecycle(), true
	case "development":
		return models.DevelopmentLifecycle(), true
	case "agent-task":
		return models.AgentTaskLifecycle(), true
	case "always-on":
		return models.AlwaysOnLifecycle(), true
	case "default":
		return models.DefaultLifecycleConfig(), true
	}
	return models.LifecycleConfig{}, false
}

func init() {
	containerExecCmd.Flags().StringVar(&execWorkdir, "workdir", "", "Working directory (defaults to /workspace)")
	containerExecCmd.Flags().IntVar(&execTimeout, "timeout", 0, "Timeout in seconds (defaults to 30)")

	containerCmd.AddCommand(containerStatsCmd, containerExecCmd, containerRestartCmd,
		containerHeartbeatCmd, containerExtendCmd, containerHibernateCmd,
		containerWakeCmd, containerLifecycleCmd)
	rootCmd.AddCommand(containerCmd)
}
