package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fleeks "github.com/fleeks/fleeks-sdk-go"
)

// projectFile is the per-directory project manifest.
const projectFile = "fleeks.yml"

// ProjectConfig describes a project checked into the repository, so a
// workspace can be recreated with one command.
type ProjectConfig struct {
	Name      string            `yaml:"name"`
	Template  string            `yaml:"template,omitempty"`
	Lifecycle string            `yaml:"lifecycle,omitempty"`
	Env       map[string]string `yaml:"env,omitempty"`
}

func loadProject() (*ProjectConfig, error) {
	data, err := os.ReadFile(projectFile)
	if err != nil {
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", projectFile, err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("%s is missing the project name", projectFile)
	}
	return &cfg, nil
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Write a fleeks.yml project manifest in the current directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(projectFile); err == nil {
			fatal(fmt.Errorf("%s already exists", projectFile))
		}

		cfg := ProjectConfig{
			Name:      args[0],
			Template:  wsTemplate,
			Lifecycle: wsLifecycle,
		}
		data, err := yaml.Marshal(&cfg)
		if err != nil {
			fatal(err)
		}
		if err := os.WriteFile(projectFile, data, 0o644); err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("Wrote " + projectFile))
	},
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create a workspace from the fleeks.yml in the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadProject()
		if err != nil {
			fatal(err)
		}

		opts := &fleeks.CreateWorkspaceOptions{
			Name:     cfg.Name,
			Template: cfg.Template,
		}
		if lc, ok := lifecyclePreset(cfg.Lifecycle); ok {
			opts.Lifecycle = &lc
		}

		client := newClient()
		ws, err := client.Workspaces.Create(context.Background(), opts)
		if err != nil {
			fatal(err)
		}

		fmt.Println(successStyle.Render("Workspace ready: ") + ws.ID)
		if ws.PreviewURL != "" {
			fmt.Println("Preview: " + ws.PreviewURL)
		}
	},
}

func init() {
	initCmd.Flags().StringVarP(&wsTemplate, "template", "t", "", "Workspace template")
	initCmd.Flags().StringVar(&wsLifecycle, "lifecycle", "", "Lifecycle preset")

	rootCmd.AddCommand(initCmd, upCmd)
}
