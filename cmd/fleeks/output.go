package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/fleeks/fleeks-sdk-go/models"
)

func newDebugLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func printResult(v any) {
	if output == "json" {
		printJSON(v)
		return
	}
	printTable(v)
}

func printTable(v any) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	switch data := v.(type) {
	case []models.WorkspaceInfo:
		if len(data) == 0 {
			fmt.Println("No workspaces found.")
			return
		}
		fmt.Fprintln(w, "ID\tNAME\tTEMPLATE\tSTATUS\tPREVIEW")
		for _, ws := range data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ws.ID, ws.Name, ws.Template, ws.Status, ws.PreviewURL)
		}

	case *models.WorkspaceInfo:
		fmt.Fprintf(w, "ID:\t%s\n", data.ID)
		fmt.Fprintf(w, "Name:\t%s\n", data.Name)
		fmt.Fprintf(w, "Template:\t%s\n", data.Template)
		fmt.Fprintf(w, "Status:\t%s\n", data.Status)
		if data.ContainerID != "" {
			fmt.Fprintf(w, "Container:\t%s\n", data.ContainerID)
		}
		if data.PreviewURL != "" {
			fmt.Fprintf(w, "Preview:\t%s\n", data.PreviewURL)
		}
		if data.DBProjectID != "" {
			fmt.Fprintf(w, "DB Project:\t%s\n", data.DBProjectID)
		}

	case []models.AgentStatusInfo:
		if len(data) == 0 {
			fmt.Println("No agents found.")
			return
		}
		fmt.Fprintln(w, "AGENT ID\tSTATUS\tSTEP\tPROGRESS")
		for _, a := range data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\n", a.AgentID, a.Status, a.CurrentStep, a.StepsComplete, a.StepsTotal)
		}

	case *models.AgentStatusInfo:
		fmt.Fprintf(w, "Agent ID:\t%s\n", data.AgentID)
		fmt.Fprintf(w, "Status:\t%s\n", data.Status)
		if data.CurrentStep != "" {
			fmt.Fprintf(w, "Step:\t%s (%d/%d)\n", data.CurrentStep, data.StepsComplete, data.StepsTotal)
		}
		if data.Error != "" {
			fmt.Fprintf(w, "Error:\t%s\n", data.Error)
		}

	case []models.EmbedInfo:
		if len(data) == 0 {
			fmt.Println("No embeds found.")
			return
		}
		fmt.Fprintln(w, "ID\tNAME\tTEMPLATE\tACTIVE\tSESSIONS\tVIEWS")
		for _, e := range data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%d\t%d\n", e.ID, e.Name, e.Template, e.IsActive, e.ActiveSessions, e.TotalViews)
		}

	case *models.EmbedInfo:
		fmt.Fprintf(w, "ID:\t%s\n", data.ID)
		fmt.Fprintf(w, "Name:\t%s\n", data.Name)
		fmt.Fprintf(w, "Template:\t%s\n", data.Template)
		fmt.Fprintf(w, "URL:\t%s\n", data.PublicURL())
		fmt.Fprintf(w, "Active:\t%t\n", data.IsActive)

	case []models.DeployListItem:
		if len(data) == 0 {
			fmt.Println("No deployments found.")
			return
		}
		fmt.Fprintln(w, "ID\tENV\tSTATUS\tURL\tCREATED")
		for _, d := range data {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", d.DeploymentID, d.Environment, d.Status, d.URL, d.CreatedAt)
		}

	case *models.DeployStatus:
		fmt.Fprintf(w, "Deployment:\t%d\n", data.DeploymentID)
		fmt.Fprintf(w, "Status:\t%s\n", data.Status)
		if data.Stage != "" {
			fmt.Fprintf(w, "Stage:\t%s (%d%%)\n", data.Stage, data.Percent)
		}
		if data.URL != "" {
			fmt.Fprintf(w, "URL:\t%s\n", data.URL)
		}
		if data.Error != "" {
			fmt.Fprintf(w, "Error:\t%s\n", data.Error)
		}

	case *models.ContainerStats:
		fmt.Fprintf(w, "Container:\t%s\n", data.ContainerID)
		fmt.Fprintf(w, "CPU:\t%.1f%%\n", data.CPUPercent)
		fmt.Fprintf(w, "Memory:\t%.1f MB (%.1f%%)\n", data.MemoryMB, data.MemoryPercent)
		fmt.Fprintf(w, "Processes:\t%d\n", data.ProcessCount)

	case *models.LifecycleStatus:
		fmt.Fprintf(w, "Container:\t%s\n", data.ContainerID)
		fmt.Fprintf(w, "State:\t%s\n", data.State)
		fmt.Fprintf(w, "Idle timeout:\t%d min\n", data.IdleTimeoutMinutes)
		fmt.Fprintf(w, "Idle action:\t%s\n", data.IdleAction)
		fmt.Fprintf(w, "Keep-alive:\t%t\n", data.KeepAliveEnabled)
		if data.TimeRemainingSeconds != nil {
			fmt.Fprintf(w, "Time remaining:\t%ds\n", *data.TimeRemainingSeconds)
		}

	default:
		printJSON(v)
	}
}
