package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are tried in order by LoadDotenv when no files are given
var DefaultEnvFiles = []string{".env.local", ".env"}

// LoadDotenv loads KEY=VALUE files into the process environment.
// Variables already set in the environment win. Missing files are skipped.
// It returns the files that were actually loaded.
func LoadDotenv(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles
	}
	loaded := make([]string, 0, len(files))
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}
