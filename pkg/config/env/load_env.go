package env

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads the .env file named by ENV_PATH, or defaultPath when unset.
// A missing file is only an error in the local environment.
func LoadDotEnv(appEnv string, defaultPath string) error {
	path := os.Getenv("ENV_PATH")
	if path == "" {
		path = defaultPath
	}

	if err := godotenv.Load(path); err != nil {
		if appEnv == "local" || appEnv == "" {
			return fmt.Errorf("load %s: %w", path, err)
		}
		slog.Debug("No .env file, using process environment", "path", path, "env", appEnv)
		return nil
	}

	slog.Debug("Loaded .env file", "path", path)
	return nil
}
