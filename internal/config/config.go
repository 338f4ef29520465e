// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// TierSettings is one term-weight tier as edited/saved. Weight is a pointer
// so a tier missing its weight field can be rejected at validation time.
type TierSettings struct {
	Name   string   `yaml:"name" json:"name"`
	Weight *float64 `yaml:"weight" json:"weight"`
	Terms  []string `yaml:"terms" json:"terms"`
}

type FilterSettings struct {
	WorkModels []string `yaml:"work_models" json:"work_models"`
	JobTypes   []string `yaml:"job_types" json:"job_types"`
	Scope      string   `yaml:"scope" json:"scope"` // any | title | description
	Require    []string `yaml:"require" json:"require"`
	Exclude    []string `yaml:"exclude" json:"exclude"`
}

type SortSettings struct {
	LocationPriority []string           `yaml:"location_priority" json:"location_priority"`
	DegreeWeights    map[string]float64 `yaml:"degree_weights" json:"degree_weights"`
	Tiers            []TierSettings     `yaml:"tiers" json:"tiers"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Dataset struct {
		WindowDays     int  `yaml:"window_days" json:"window_days"`
		Favorites      bool `yaml:"favorites" json:"favorites"`
		RefreshSeconds int  `yaml:"refresh_seconds" json:"refresh_seconds"`
	} `yaml:"dataset" json:"dataset"`

	Pipeline struct {
		ChunkSize int `yaml:"chunk_size" json:"chunk_size"`
		Workers   int `yaml:"workers" json:"workers"`
	} `yaml:"pipeline" json:"pipeline"`

	Filter FilterSettings `yaml:"filter" json:"filter"`
	Sort   SortSettings   `yaml:"sort" json:"sort"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
