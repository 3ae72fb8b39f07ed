package config

import (
	"encoding/json"
	"fmt"
	"os"

	"voxelview/internal/render"
)

// File is the on-disk settings layout. Absent fields keep their current value.
type File struct {
	RenderDistance  *int    `json:"render_distance"`
	SectionSize     *int    `json:"section_size"`
	MaxRemeshMillis *int    `json:"max_remesh_millis"`
	NeighborRule    *string `json:"neighbor_rule"`
	FPSLimit        *int    `json:"fps_limit"`
	Seed            *int64  `json:"seed"`
	WorldRadius     *int    `json:"world_radius"`
}

// LoadFile reads a JSON settings file and applies it to the global settings.
// A missing file is not an error.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return Apply(f)
}

// Apply validates f and copies every present field into the global settings.
func Apply(f File) error {
	var rule render.NeighborRule
	if f.NeighborRule != nil {
		var err error
		if rule, err = render.ParseNeighborRule(*f.NeighborRule); err != nil {
			return err
		}
	}

	if f.SectionSize != nil && *f.SectionSize < 1 {
		return fmt.Errorf("section_size must be at least 1, got %d", *f.SectionSize)
	}

	if f.RenderDistance != nil {
		SetRenderDistance(*f.RenderDistance)
	}
	if f.SectionSize != nil {
		SetSectionSize(*f.SectionSize)
	}
	if f.MaxRemeshMillis != nil {
		SetMaxRemeshMillis(*f.MaxRemeshMillis)
	}
	if f.NeighborRule != nil {
		SetNeighborRule(rule)
	}
	if f.FPSLimit != nil {
		SetFPSLimit(*f.FPSLimit)
	}
	if f.Seed != nil {
		SetSeed(*f.Seed)
	}
	if f.WorldRadius != nil {
		SetWorldRadius(*f.WorldRadius)
	}
	return nil
}
