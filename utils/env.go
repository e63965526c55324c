package utils

import (
	"bufio"
	"os"
	"strings"
)

// Env resolves configuration values from a layered source: values read from
// a .env file first, then the OS environment. The first non-blank match wins.
type Env struct {
	fileValues map[string]string
}

// LoadEnv reads the first .env file found in the given search paths. A
// missing file is not an error; the loader simply falls through to the OS
// environment for every key.
func LoadEnv(logger *Logger, searchPaths ...string) *Env {
	if len(searchPaths) == 0 {
		searchPaths = []string{".env", "../.env"}
	}

	env := &Env{fileValues: make(map[string]string)}

	for _, path := range searchPaths {
		file, err := os.Open(path)
		if err != nil {
			continue
		}

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, value, found := strings.Cut(line, "=")
			if !found {
				continue
			}
			env.fileValues[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
		file.Close()

		logger.Info("Loaded %d values from %s", len(env.fileValues), path)
		return env
	}

	logger.Info("No .env file found, using OS environment only")
	return env
}

// Get returns the value for key, preferring the .env file over the OS
// environment. Blank values are treated as unset.
func (e *Env) Get(key string) string {
	if v, ok := e.fileValues[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(key))
}

// GetOrElse returns the value for key, or def when the key is unset or blank.
func (e *Env) GetOrElse(key, def string) string {
	if v := e.Get(key); v != "" {
		return v
	}
	return def
}
