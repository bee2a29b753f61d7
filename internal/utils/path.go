package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to the gptc configuration directory.
// The directory is located inside the user's configuration directory
// as <UserConfigDir>/gptc, unless overridden by GPTC_CONFIG_DIR.
func GetConfigDir() (string, error) {
	if configHome := os.Getenv("GPTC_CONFIG_DIR"); configHome != "" {
		return configHome, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(cfg, "gptc"), nil
}

// GetDocumentsDir returns the user's documents directory, $HOME/Documents,
// unless overridden by GPTC_DOCUMENTS_DIR.
func GetDocumentsDir() (string, error) {
	if docs := os.Getenv("GPTC_DOCUMENTS_DIR"); docs != "" {
		return docs, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(home, "Documents"), nil
}
