package movies

import (
	"bufio"
	"os"
	"strings"

	"github.com/jerrytigerxu/go-projects/internal/errors"
)

const apiKeyEnvVar = "TMDB_API_KEY"

// LoadAPIKey resolves the TMDB API key from the environment, falling
// back to a .env file in the working directory.
func LoadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(apiKeyEnvVar)); key != "" {
		return key, nil
	}

	if key := readKeyFromDotEnv(".env"); key != "" {
		return key, nil
	}

	return "", errors.NewValidationError(
		"TMDB API key not set; export TMDB_API_KEY or add it to a .env file", nil)
}

// readKeyFromDotEnv scans a dotenv-style file for the API key entry.
// Returns an empty string when the file is missing or has no entry.
func readKeyFromDotEnv(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(name) != apiKeyEnvVar {
			continue
		}
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		if value != "" {
			return value
		}
	}
	return ""
}
