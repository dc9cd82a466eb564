package bracket

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrConfig marks a malformed bracket configuration. It is fatal at startup:
// the server refuses to boot on a bad bracket rather than failing mid-tournament.
var ErrConfig = errors.New("invalid bracket configuration")

type Team struct {
	Name string `json:"team_name"`
	Seed int    `json:"seed"`
}

type Region struct {
	Name  string `json:"region_name"`
	Teams []Team `json:"teams"`
}

// Config is the bracket definition loaded once at startup. Region order in
// the file is load-bearing: regions[0]'s winner plays regions[1]'s in the
// first Final Four game, regions[2]'s plays regions[3]'s in the second.
type Config struct {
	Regions      []Region       `json:"regions"`
	RoundWeights map[string]int `json:"round_weights,omitempty"`
}

// Load reads and validates a bracket configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every structural invariant eagerly: 4 regions, 16 teams
// each, seeds forming a permutation of 1..16, globally unique team names,
// and round weight keys naming real rounds.
func (c *Config) Validate() error {
	if len(c.Regions) != RegionCount {
		return fmt.Errorf("%w: expected %d regions, found %d", ErrConfig, RegionCount, len(c.Regions))
	}
	seen := make(map[string]string)
	for _, region := range c.Regions {
		if strings.TrimSpace(region.Name) == "" {
			return fmt.Errorf("%w: region with empty name", ErrConfig)
		}
		if len(region.Teams) != TeamsPerRegion {
			return fmt.Errorf("%w: region %q must have %d teams, found %d",
				ErrConfig, region.Name, TeamsPerRegion, len(region.Teams))
		}
		seeds := make(map[int]bool, TeamsPerRegion)
		for _, team := range region.Teams {
			name := strings.TrimSpace(team.Name)
			if name == "" {
				return fmt.Errorf("%w: region %q has a team with no name", ErrConfig, region.Name)
			}
			if team.Seed < 1 || team.Seed > TeamsPerRegion {
				return fmt.Errorf("%w: region %q team %q has seed %d out of range",
					ErrConfig, region.Name, name, team.Seed)
			}
			if seeds[team.Seed] {
				return fmt.Errorf("%w: region %q has duplicate seed %d", ErrConfig, region.Name, team.Seed)
			}
			seeds[team.Seed] = true
			if other, ok := seen[name]; ok {
				return fmt.Errorf("%w: team %q appears in regions %q and %q",
					ErrConfig, name, other, region.Name)
			}
			seen[name] = region.Name
		}
	}
	for name := range c.RoundWeights {
		if _, err := ParseRound(name); err != nil {
			return fmt.Errorf("%w: round_weights names unknown round %q", ErrConfig, name)
		}
	}
	return nil
}

// Weights resolves the configured round weight table on top of the defaults.
// Call only after Validate.
func (c *Config) Weights() Weights {
	w := DefaultWeights()
	for name, points := range c.RoundWeights {
		r, err := ParseRound(name)
		if err != nil {
			continue
		}
		w[r] = points
	}
	return w
}

// BySeed indexes a region's teams by seed. Call only after Validate.
func (r Region) BySeed() map[int]Team {
	out := make(map[int]Team, len(r.Teams))
	for _, t := range r.Teams {
		out[t.Seed] = t
	}
	return out
}

// SeedTable maps every team name to its seed.
func (c *Config) SeedTable() map[string]int {
	out := make(map[string]int, RegionCount*TeamsPerRegion)
	for _, region := range c.Regions {
		for _, t := range region.Teams {
			out[strings.TrimSpace(t.Name)] = t.Seed
		}
	}
	return out
}

// TeamNames returns the set of every team in the bracket.
func (c *Config) TeamNames() map[string]bool {
	out := make(map[string]bool, RegionCount*TeamsPerRegion)
	for _, region := range c.Regions {
		for _, t := range region.Teams {
			out[strings.TrimSpace(t.Name)] = true
		}
	}
	return out
}
