package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Arrangement is a saved target layout: which owners should sit on which
// side of the separator. Owners are matched case-insensitively against the
// item's bundle identifier first, then its display name.
type Arrangement struct {
	Visible []string `yaml:"visible"`
	Hidden  []string `yaml:"hidden"`
}

// LoadArrangement reads an arrangement from a YAML file.
func LoadArrangement(path string) (*Arrangement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read arrangement: %w", err)
	}
	var a Arrangement
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse arrangement %s: %w", path, err)
	}
	if len(a.Visible) == 0 && len(a.Hidden) == 0 {
		return nil, fmt.Errorf("arrangement %s names no owners", path)
	}
	return &a, nil
}

// WantsVisible reports whether the arrangement places the item on the
// visible side, and whether the arrangement mentions the item at all.
func (a *Arrangement) WantsVisible(it Item) (visible, mentioned bool) {
	if matchOwner(a.Visible, it) {
		return true, true
	}
	if matchOwner(a.Hidden, it) {
		return false, true
	}
	return false, false
}

func matchOwner(owners []string, it Item) bool {
	for _, o := range owners {
		if strings.EqualFold(o, it.BundleID) || strings.EqualFold(o, it.DisplayName()) {
			return true
		}
	}
	return false
}
