package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// NamedPair is a saved filter/sort configuration pair, stored by name under
// <dataDir>/configs/<name>.yml.
type NamedPair struct {
	Filter FilterSettings `yaml:"filter" json:"filter"`
	Sort   SortSettings   `yaml:"sort" json:"sort"`
}

func configsDir(dataDir string) string {
	return filepath.Join(dataDir, "configs")
}

// sanitizeName keeps named configs inside the configs dir and file-system
// safe. Letters, digits, space, dash and underscore pass; anything else is
// rejected.
func sanitizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", fmt.Errorf("config name is empty")
	}
	for _, r := range n {
		ok := r == ' ' || r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !ok {
			return "", fmt.Errorf("config name contains invalid character %q", r)
		}
	}
	return strings.ReplaceAll(strings.ToLower(n), " ", "_"), nil
}

func ListNamed(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(configsDir(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yml"))
	}
	return names, nil
}

func LoadNamed(dataDir, name string) (NamedPair, error) {
	var p NamedPair
	n, err := sanitizeName(name)
	if err != nil {
		return p, err
	}
	b, err := os.ReadFile(filepath.Join(configsDir(dataDir), n+".yml"))
	if err != nil {
		return p, err
	}
	err = yaml.Unmarshal(b, &p)
	return p, err
}

func SaveNamed(dataDir, name string, p NamedPair) error {
	n, err := sanitizeName(name)
	if err != nil {
		return err
	}
	if _, vr := ValidatePair(p); !vr.OK() {
		return fmt.Errorf("config %q validation failed:\n- %s", name, strings.Join(vr.Errors, "\n- "))
	}
	dir := configsDir(dataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(&p)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, n+".yml")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
