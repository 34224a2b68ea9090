package explorer

import (
	"encoding/json"
	"errors"
	"os"
	"os/user"
	"path/filepath"
)

// The explorer keeps a little state between runs (which resource was
// being explored) in a JSON file under the user's state directory.

func statePath() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		homeDir := os.Getenv("HOME")
		if homeDir == "" {
			usr, err := user.Current()
			if err != nil {
				return "", err
			}
			homeDir = usr.HomeDir
		}
		base = filepath.Join(homeDir, ".local", "state")
	}
	err := os.MkdirAll(filepath.Join(base, "arc"), 0755)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "arc", "explorer_session.json"), nil
}

func readState() (map[string]string, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}
	body, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	} else if err != nil {
		return nil, err
	}
	var data map[string]string
	err = json.Unmarshal(body, &data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func writeState(data map[string]string) error {
	path, err := statePath()
	if err != nil {
		return err
	}
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, body, 0644)
}

func remember(key, value string) error {
	data, err := readState()
	if err != nil {
		return err
	}
	data[key] = value
	return writeState(data)
}

func recall(key string) (string, error) {
	data, err := readState()
	if err != nil {
		return "", err
	}
	return data[key], nil
}

func forget(key string) error {
	data, err := readState()
	if err != nil {
		return err
	}
	if _, exists := data[key]; !exists {
		return nil
	}
	delete(data, key)
	return writeState(data)
}
