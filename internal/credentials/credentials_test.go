package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

// isolate points every credential source at empty temp dirs.
func isolate(t *testing.T) (configDir, docsDir string) {
	t.Helper()
	configDir = t.TempDir()
	docsDir = t.TempDir()
	t.Setenv(APIKeyEnv, "")
	t.Setenv("GPTC_CONFIG_DIR", configDir)
	t.Setenv("GPTC_DOCUMENTS_DIR", docsDir)
	return configDir, docsDir
}

func writeFile(t *testing.T, p, content string) {
	t.Helper()
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %v: %v", p, err)
	}
}

func TestResolve(t *testing.T) {
	t.Run("it should prefer the environment", func(t *testing.T) {
		configDir, docsDir := isolate(t)
		writeFile(t, filepath.Join(configDir, ".env"), "OPENAI_API_KEY=from-dotenv\n")
		writeFile(t, filepath.Join(docsDir, APIKeyFile), "from-file")
		t.Setenv(APIKeyEnv, "from-env")

		got, err := Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testboil.FailTestIfDiff(t, got, "from-env")
	})

	t.Run("it should fall back to the .env file", func(t *testing.T) {
		configDir, docsDir := isolate(t)
		writeFile(t, filepath.Join(configDir, ".env"), "# comment\nOPENAI_API_KEY=\"from-dotenv\"\n")
		writeFile(t, filepath.Join(docsDir, APIKeyFile), "from-file")

		got, err := Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testboil.FailTestIfDiff(t, got, "from-dotenv")
	})

	t.Run("it should fall back to the key file, trimmed", func(t *testing.T) {
		_, docsDir := isolate(t)
		writeFile(t, filepath.Join(docsDir, APIKeyFile), "  from-file\n")

		got, err := Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testboil.FailTestIfDiff(t, got, "from-file")
	})

	t.Run("it should return ErrMissingKey when nothing is found", func(t *testing.T) {
		isolate(t)
		_, err := Resolve()
		if !errors.Is(err, ErrMissingKey) {
			t.Fatalf("expected ErrMissingKey, got: %v", err)
		}
	})

	t.Run("it should return ErrMissingKey when the documents dir is unknown", func(t *testing.T) {
		isolate(t)
		t.Setenv("GPTC_DOCUMENTS_DIR", "")
		t.Setenv("HOME", "")
		_, err := Resolve()
		if !errors.Is(err, ErrMissingKey) {
			t.Fatalf("expected ErrMissingKey, got: %v", err)
		}
	})

	t.Run("it should treat an empty key file as missing", func(t *testing.T) {
		_, docsDir := isolate(t)
		writeFile(t, filepath.Join(docsDir, APIKeyFile), "\n")
		_, err := Resolve()
		if !errors.Is(err, ErrMissingKey) {
			t.Fatalf("expected ErrMissingKey, got: %v", err)
		}
	})
}

func TestKeyFilePath(t *testing.T) {
	_, docsDir := isolate(t)
	got, err := KeyFilePath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testboil.FailTestIfDiff(t, got, filepath.Join(docsDir, "open-api-key.txt"))
}
