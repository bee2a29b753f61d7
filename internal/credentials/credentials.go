// Package credentials resolves the OpenAI API key.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/gptc/internal/utils"
	"github.com/joho/godotenv"
)

const (
	APIKeyEnv  = "OPENAI_API_KEY"
	APIKeyFile = "open-api-key.txt"
	envFile    = ".env"
)

var ErrMissingKey = errors.New("missing api key")

// Resolve the api key. The environment is checked first, then the .env file
// in the config dir and last the key file in the documents dir.
func Resolve() (string, error) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		return key, nil
	}

	key, err := fromEnvFile()
	if err != nil {
		ancli.PrintWarn(fmt.Sprintf("failed to read %v file: %v\n", envFile, err))
	}
	if key != "" {
		return key, nil
	}

	keyFilePath, err := KeyFilePath()
	if err != nil {
		return "", fmt.Errorf("%w, failed to find key file: %w", ErrMissingKey, err)
	}
	return fromKeyFile(keyFilePath)
}

// KeyFilePath returns where the fallback key file is expected to be.
func KeyFilePath() (string, error) {
	docs, err := utils.GetDocumentsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(docs, APIKeyFile), nil
}

func fromEnvFile() (string, error) {
	configDir, err := utils.GetConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(configDir, envFile)
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	env, err := godotenv.Read(p)
	if err != nil {
		return "", fmt.Errorf("failed to parse: %w", err)
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("read %v entries from: '%v'\n", len(env), p))
	}
	return strings.TrimSpace(env[APIKeyEnv]), nil
}

func fromKeyFile(p string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrMissingKey
		}
		return "", fmt.Errorf("failed to read key file: %w", err)
	}
	key := strings.TrimSpace(string(b))
	if key == "" {
		return "", ErrMissingKey
	}
	return key, nil
}
