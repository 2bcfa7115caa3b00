package handlers

import (
	"fmt"
	"os"

	"github.com/public-transport/gtfsdeploy/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the configuration wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.Save

	// interactiveTTY gates the wizard on an interactive terminal.
	interactiveTTY = isInteractiveTTY
)

// Init runs the configuration wizard and writes the result to a file.
func Init(outputPath string) error {
	if !interactiveTTY() {
		return fmt.Errorf("init requires an interactive terminal; write %s by hand instead", config.DefaultConfigFilename)
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard()
	if err != nil {
		return err
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("gtfsdeploy - publish and deploy the gtfs-warsaw service")
	fmt.Println("========================================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment configuration with sensible defaults.")
	fmt.Println("Secrets stay in the environment and are never written to the file.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Image:    %s\n", cfg.Image.Reference())
	if cfg.Registry.Endpoint != "" {
		fmt.Printf("  Registry: %s\n", cfg.Registry.Endpoint)
	} else {
		fmt.Printf("  Registry: resolved via %s or the API\n", config.EnvRegistryEndpoint)
	}
	if cfg.Cluster.ID != "" {
		fmt.Printf("  Cluster:  %s\n", cfg.Cluster.ID)
	} else {
		fmt.Printf("  Cluster:  resolved via %s\n", config.EnvClusterID)
	}
	fmt.Printf("  Manifest: %s\n", cfg.Manifest)
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. export %s=<your token>\n", config.EnvAccessToken)
	fmt.Println("  2. gtfsdeploy doctor")
	fmt.Println("  3. gtfsdeploy publish")
	fmt.Println("  4. gtfsdeploy deploy")
	fmt.Println()
}
