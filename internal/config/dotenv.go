// Package config resolves client options from explicit values, the process
// environment, dotenv files and optional config files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/subosito/gotenv"

	"github.com/metrifox/metrifox-go/internal/constants"
)

var dotenvOnce sync.Once

// LoadDotenv seeds the environment from the first of .env.local or .env found
// in the working directory. It runs at most once per process; later calls are
// no-ops. Read errors are ignored so an unreadable file never blocks startup.
func LoadDotenv() {
	dotenvOnce.Do(func() {
		for _, name := range constants.DotenvFiles {
			loaded, err := LoadDotenvFile(name)
			if loaded || err != nil {
				return
			}
		}
	})
}

// LoadDotenvFile applies the KEY=VALUE lines in path without overriding
// variables that are already set. It reports whether the file existed. Blank
// lines, # comments and lines that are not a valid assignment are skipped.
// Values are taken literally apart from one layer of matching quotes.
func LoadDotenvFile(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("reading dotenv file %s: %w", path, err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		key, value, ok := parseDotenvLine(line)
		if !ok {
			continue
		}

		_, set := os.LookupEnv(key)
		if set {
			continue
		}

		err = os.Setenv(key, value)
		if err != nil {
			return true, fmt.Errorf("setting %s from %s: %w", key, path, err)
		}
	}

	return true, nil
}

// parseDotenvLine splits one line into a key and a literal value. gotenv
// validates the key side so "export KEY" and dotted names are accepted.
func parseDotenvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	rawKey, rawValue, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	env, err := gotenv.StrictParse(strings.NewReader(strings.TrimSpace(rawKey) + "="))
	if err != nil || len(env) != 1 {
		return "", "", false
	}

	var key string
	for name := range env {
		key = name
	}

	return key, unquote(strings.TrimSpace(rawValue)), true
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			return value[1 : len(value)-1]
		}
	}

	return value
}
