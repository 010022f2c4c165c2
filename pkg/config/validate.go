package config

import (
	"bytes"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileSchema mirrors Config as it is spelled in TOML. Durations are plain
// strings there, so they are decoded as such.
type fileSchema struct {
	Templates Templates `toml:"templates"`
	Releases  struct {
		URL     string `toml:"url"`
		Timeout string `toml:"timeout"`
	} `toml:"releases"`
	Defaults Defaults `toml:"defaults"`
	VCS      VCS      `toml:"vcs"`
}

// UnknownKeys strictly decodes the TOML file at path and returns the dotted
// keys it does not recognise. Unreadable or invalid files yield nil; koanf
// reports those when loading.
func UnknownKeys(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var schema fileSchema
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&schema)
	if err == nil {
		return nil
	}

	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		return nil
	}

	keys := make([]string, 0, len(strict.Errors))
	for _, e := range strict.Errors {
		keys = append(keys, strings.Join(e.Key(), "."))
	}
	sort.Strings(keys)
	return keys
}
