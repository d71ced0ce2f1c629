package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	fleeks "github.com/fleeks/fleeks-sdk-go"
)

var (
	agentWorkspace string
	agentModel     string
	agentSkills    []string
	agentFollow    bool
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Agent orchestration commands",
}

var agentStartCmd = &cobra.Command{
	Use:   "start <prompt>",
	Short: "Start an agent task in a workspace",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if agentWorkspace == "" {
			fatal(fmt.Errorf("--workspace is required"))
		}
		client := newClient()
		ctx := context.Background()

		exec, err := client.Agents.Start(ctx, &fleeks.StartAgentOptions{
			WorkspaceID: agentWorkspace,
			Prompt:      args[0],
			Model:       agentModel,
			Skills:      agentSkills,
		})
		if err != nil {
			fatal(err)
		}

		fmt.Println(successStyle.Render("Agent started: ") + exec.AgentID)

		if agentFollow {
			followAgent(ctx, client, exec.AgentID)
		}
	},
}

var agentStatusCmd = &cobra.Command{
	Use:   "status <agent-id>",
	Short: "Show agent task status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		info, err := client.Agents.Status(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		printResult(info)
	},
}

var agentOutputCmd = &cobra.Command{
	Use:   "output <agent-id>",
	Short: "Print the output an agent has produced so far",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		out, err := client.Agents.Output(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}
		fmt.Print(out.Output)
		if out.Truncated {
			fmt.Println(dimStyle.Render("\n[output truncated]"))
		}
	},
}

var agentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List agents in a workspace",
	Run: func(cmd *cobra.Command, args []string) {
		if agentWorkspace == "" {
			fatal(fmt.Errorf("--workspace is required"))
		}
		client := newClient()

		list, err := client.Agents.List(context.Background(), agentWorkspace)
		if err != nil {
			fatal(err)
		}
		printResult(list.Agents)
	},
}

var agentStopCmd = &cobra.Command{
	Use:   "stop <agent-id>",
	Short: "Stop a running agent task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		result, err := client.Agents.Stop(context.Background(), args[0])
		if err != nil {
			fatal(err)
		}

		fmt.Println(successStyle.Render("Agent stopped: ") + result.AgentID)
		if result.Message != "" {
			fmt.Println(dimStyle.Render(result.Message))
		}
		if result.HandoffID != "" {
			fmt.Printf("Handoff created: %s\n", result.HandoffID)
		}
	},
}

var agentWatchCmd = &cobra.Command{
	Use:   "watch <agent-id>",
	Short: "Follow an agent's live event stream",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		followAgent(context.Background(), client, args[0])
	},
}

func followAgent(ctx context.Context, client *fleeks.Client, agentID string) {
	events, err := client.Agents.Stream(ctx, agentID)
	if err != nil {
		fatal(err)
	}

	for ev := range events {
		if ev.Type != "message" {
			fmt.Print(titleStyle.Render(ev.Type) + " ")
		}
		fmt.Println(ev.Data)
	}
}

func init() {
	agentCmd.PersistentFlags().StringVarP(&agentWorkspace, "workspace", "w", "", "Workspace ID")
	agentStartCmd.Flags().StringVar(&agentModel, "model", "", "Model override")
	agentStartCmd.Flags().StringSliceVar(&agentSkills, "skill", nil, "Skill to enable (repeatable)")
	agentStartCmd.Flags().BoolVarP(&agentFollow, "follow", "f", false, "Stream events after starting")

	agentCmd.AddCommand(agentStartCmd, agentStatusCmd, agentOutputCmd, agentListCmd, agentStopCmd, agentWatchCmd)
	rootCmd.AddCommand(agentCmd)
}
