package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"labpeek/internal/api"
	"labpeek/internal/app"
	"labpeek/internal/config"
	"labpeek/internal/gitremote"
	"labpeek/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config file (default ~/.config/labpeek/config.toml)")
	projectPath := flag.String("project", "", "GitLab project path (namespace/project), overrides detection")
	branch := flag.String("branch", "", "Only track MRs from this source branch")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("labpeek", version)
		os.Exit(0)
	}

	path := *configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client, err := api.NewClient(cfg.GitLab.InstanceURL, cfg.GitLab.Token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	projectID, err := resolveProject(client, cfg, *projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sourceBranch := *branch
	focusBranch := sourceBranch != ""
	if !focusBranch && cfg.App.FocusCurrentBranch {
		if b, err := gitremote.CurrentBranch(); err == nil {
			sourceBranch = b
			focusBranch = true
		}
	}

	state := app.New(projectID, sourceBranch, focusBranch, cfg.AutoRefreshInterval())
	state.MaxTracked = cfg.App.MaxTrackedMRs

	tick := time.Duration(cfg.App.RefreshIntervalSeconds) * time.Second
	model := tui.New(state, client, cfg.ResolveEditor(), tick)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveProject picks the project to track: the -project flag wins,
// then the configured default ID, then the origin remote of the
// current directory.
func resolveProject(client *api.Client, cfg config.Config, flagPath string) (int64, error) {
	if flagPath != "" {
		proj, err := client.GetProjectByPath(flagPath)
		if err != nil {
			return 0, err
		}
		return proj.ID, nil
	}
	if cfg.GitLab.DefaultProjectID != 0 {
		return cfg.GitLab.DefaultProjectID, nil
	}
	remote, err := gitremote.DetectRemote()
	if err != nil {
		return 0, fmt.Errorf("no project configured and %w", err)
	}
	proj, err := client.GetProjectByPath(remote.Path())
	if err != nil {
		return 0, err
	}
	return proj.ID, nil
}
