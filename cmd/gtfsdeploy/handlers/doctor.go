package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/public-transport/gtfsdeploy/internal/config"
	"github.com/public-transport/gtfsdeploy/internal/manifest"
	"github.com/public-transport/gtfsdeploy/internal/platform/digitalocean"
	"github.com/public-transport/gtfsdeploy/internal/util/prerequisites"
)

// DoctorStatus represents the deployment environment diagnostic status.
type DoctorStatus struct {
	ConfigPath string      `json:"configPath,omitempty"`
	Config     CheckState  `json:"config"`
	Tools      []ToolState `json:"tools"`
	Token      CheckState  `json:"token"`
	Account    CheckState  `json:"account"`
	Registry   CheckState  `json:"registry"`
	Cluster    CheckState  `json:"cluster"`
	Manifest   CheckState  `json:"manifest"`
}

// CheckState represents the outcome of a single diagnostic check.
type CheckState struct {
	OK       bool   `json:"ok"`
	Skipped  bool   `json:"skipped,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Message  string `json:"message,omitempty"`
	Required bool   `json:"required"`
}

// ToolState represents the availability of a client tool.
type ToolState struct {
	Name     string `json:"name"`
	Found    bool   `json:"found"`
	Required bool   `json:"required"`
	Version  string `json:"version,omitempty"`
}

// checkTools can be replaced in tests.
var checkTools = prerequisites.CheckAll

// Doctor handles the doctor command.
//
// It runs local checks (config, docker CLI, manifest) and, when a token
// is present, probes the provider API for account, registry, and
// cluster reachability. Failed required checks make the command exit
// non-zero so it can gate CI pipelines.
func Doctor(ctx context.Context, configPath string, jsonOutput bool) error {
	status := buildDoctorStatus(ctx, configPath)

	if jsonOutput {
		if err := printDoctorJSON(status); err != nil {
			return err
		}
	} else if isInteractiveTTY() {
		fmt.Println(renderDoctorStyled(status))
	} else {
		printDoctorPlain(status)
	}

	if failed := requiredFailures(status); len(failed) > 0 {
		return fmt.Errorf("doctor found problems: %s", strings.Join(failed, ", "))
	}
	return nil
}

// buildDoctorStatus runs all diagnostic checks.
func buildDoctorStatus(ctx context.Context, configPath string) *DoctorStatus {
	status := &DoctorStatus{}

	// Config
	cfg, err := loadConfig(configPath)
	if err != nil {
		status.Config = CheckState{Required: true, Message: err.Error()}
	} else {
		status.Config = CheckState{OK: true, Required: true, Detail: cfg.Image.Reference()}
	}
	status.ConfigPath = configPath

	// Client tools
	results := checkTools()
	for _, r := range results.Results {
		status.Tools = append(status.Tools, ToolState{
			Name:     r.Tool.Name,
			Found:    r.Found,
			Required: r.Tool.Required,
			Version:  r.Version,
		})
	}

	// Token
	token := os.Getenv(config.EnvAccessToken)
	if token == "" {
		status.Token = CheckState{Required: true, Message: config.EnvAccessToken + " is not set"}
	} else {
		status.Token = CheckState{OK: true, Required: true}
	}

	// API probes need both token and config
	if token == "" || cfg == nil {
		status.Account = CheckState{Skipped: true, Required: true}
		status.Registry = CheckState{Skipped: true, Required: true}
		status.Cluster = CheckState{Skipped: true, Required: true}
	} else {
		probeProvider(ctx, cfg, status)
	}

	// Manifest
	if cfg == nil {
		status.Manifest = CheckState{Skipped: true, Required: true}
	} else {
		status.Manifest = checkManifest(cfg)
	}

	return status
}

// probeProvider fills in the API-backed checks.
func probeProvider(ctx context.Context, cfg *config.Config, status *DoctorStatus) {
	client := newProviderClient()

	account, err := client.AccountStatus(ctx)
	switch {
	case digitalocean.IsUnauthorized(err):
		status.Account = CheckState{Required: true, Message: "token rejected by the API"}
	case err != nil:
		status.Account = CheckState{Required: true, Message: err.Error()}
	default:
		status.Account = CheckState{OK: true, Required: true, Detail: account}
	}

	if endpoint := cfg.ResolveRegistryEndpoint(); endpoint != "" {
		status.Registry = CheckState{OK: true, Required: true, Detail: endpoint}
	} else if endpoint, err := client.RegistryEndpoint(ctx); err != nil {
		status.Registry = CheckState{Required: true, Message: err.Error()}
	} else {
		status.Registry = CheckState{OK: true, Required: true, Detail: endpoint + " (via API)"}
	}

	clusterID := cfg.ResolveClusterID()
	if clusterID == "" {
		status.Cluster = CheckState{Required: true, Message: "no cluster ID configured; set cluster.id or " + config.EnvClusterID}
		return
	}
	name, err := client.ClusterName(ctx, clusterID)
	switch {
	case digitalocean.IsNotFound(err):
		status.Cluster = CheckState{Required: true, Message: fmt.Sprintf("cluster %s not found", clusterID)}
	case err != nil:
		status.Cluster = CheckState{Required: true, Message: err.Error()}
	default:
		status.Cluster = CheckState{OK: true, Required: true, Detail: name}
	}
}

// checkManifest verifies the manifest parses as a cron job.
func checkManifest(cfg *config.Config) CheckState {
	data, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return CheckState{Required: true, Message: err.Error()}
	}
	cronJob, err := manifest.DecodeCronJob(data)
	if err != nil {
		return CheckState{Required: true, Message: err.Error()}
	}
	return CheckState{OK: true, Required: true, Detail: fmt.Sprintf("CronJob %s (%s)", cronJob.Name, cronJob.Spec.Schedule)}
}

// requiredFailures lists required checks that failed (skipped checks don't count).
func requiredFailures(status *DoctorStatus) []string {
	var failed []string
	add := func(name string, c CheckState) {
		if c.Required && !c.OK && !c.Skipped {
			failed = append(failed, name)
		}
	}
	add("config", status.Config)
	for _, tool := range status.Tools {
		if tool.Required && !tool.Found {
			failed = append(failed, tool.Name)
		}
	}
	add("token", status.Token)
	add("account", status.Account)
	add("registry", status.Registry)
	add("cluster", status.Cluster)
	add("manifest", status.Manifest)
	return failed
}

// printDoctorJSON outputs status as JSON.
func printDoctorJSON(status *DoctorStatus) error {
	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printDoctorPlain outputs status as a formatted ASCII table with emoji.
func printDoctorPlain(status *DoctorStatus) {
	fmt.Println()
	title := "gtfsdeploy doctor"
	fmt.Printf("  %s\n", title)
	fmt.Println("  " + strings.Repeat("═", len(title)))
	fmt.Println()

	fmt.Println("  Local")
	fmt.Println("  " + strings.Repeat("─", 35))
	printCheckRow("Config", status.Config)
	for _, tool := range status.Tools {
		extra := tool.Version
		if !tool.Required && !tool.Found {
			extra = "optional"
		}
		printRow(tool.Name, tool.Found || !tool.Required, extra)
	}
	printCheckRow("Manifest", status.Manifest)
	fmt.Println()

	fmt.Println("  Provider")
	fmt.Println("  " + strings.Repeat("─", 35))
	printCheckRow("Token", status.Token)
	printCheckRow("Account", status.Account)
	printCheckRow("Registry", status.Registry)
	printCheckRow("Cluster", status.Cluster)
	fmt.Println()
}

func printCheckRow(name string, state CheckState) {
	if state.Skipped {
		fmt.Printf("  ⏭️  %-20s skipped\n", name)
		return
	}
	extra := state.Detail
	if !state.OK && state.Message != "" {
		extra = state.Message
	}
	printRow(name, state.OK, extra)
}

func printRow(name string, ready bool, extra string) {
	indicator := "✅" // green check
	if !ready {
		indicator = "❌" // red X
	}

	if extra != "" {
		fmt.Printf("  %s  %-20s %s\n", indicator, name, extra)
	} else {
		fmt.Printf("  %s  %s\n", indicator, name)
	}
}
