package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dervirvel/the-littlest-jupyterhub/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// initFileExists checks if a file exists.
	initFileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// initRunWizard runs the interactive wizard.
	initRunWizard = config.RunWizard

	// initSaveConfig writes the config under an install prefix.
	initSaveConfig = config.SaveConfig
)

// Init runs the configuration wizard and writes the result as config.yaml
// under the given install prefix (the active prefix when empty).
func Init(ctx context.Context, prefix string) error {
	if prefix == "" {
		prefix = config.InstallPrefix()
	}
	path := filepath.Join(prefix, config.ConfigFilename)

	if initFileExists(path) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", path)
	}

	printWelcome()

	result, err := initRunWizard(ctx)
	if err != nil {
		return err
	}

	overrides := result.ToOverrides()
	if err := initSaveConfig(overrides, prefix); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(path, result)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("The Littlest JupyterHub - configuration")
	fmt.Println("=======================================")
	fmt.Println()
	fmt.Println("This wizard creates a config.yaml with sensible defaults.")
	fmt.Println("Everything can be changed later with tljh-config set.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(path string, result *config.WizardResult) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", path)
	fmt.Println()

	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Authenticator: %s\n", result.AuthType)
	if result.MemoryLimit != "" {
		fmt.Printf("  Memory limit:  %s per user\n", result.MemoryLimit)
	} else {
		fmt.Println("  Memory limit:  none")
	}
	if result.DefaultApp != "" {
		fmt.Printf("  Default app:   %s\n", result.DefaultApp)
	} else {
		fmt.Println("  Default app:   classic notebook")
	}
	if result.CullEnabled {
		fmt.Println("  Idle culling:  enabled")
	} else {
		fmt.Println("  Idle culling:  disabled")
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Review the file and adjust values:")
	fmt.Println("     tljh-config show")
	fmt.Println()
	fmt.Println("  2. Generate the JupyterHub configuration:")
	fmt.Println("     tljh-config apply")
	fmt.Println()
}
