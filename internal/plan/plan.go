// Package plan loads test plans: YAML files declaring the units of a run,
// their commands and their dependencies. Plan validation happens entirely at
// load time, so a malformed declaration is a usage error and never turns
// into a unit failure.
package plan

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tdep/internal/dependency"
	"tdep/internal/domain"
)

// file is the YAML shape of a plan file.
type file struct {
	Automark      bool       `yaml:"automark"`
	IgnoreUnknown bool       `yaml:"ignore_unknown"`
	Units         []unitDecl `yaml:"units"`
}

type unitDecl struct {
	Name     string   `yaml:"name"`
	Group    string   `yaml:"group"`
	Run      string   `yaml:"run"`
	Setup    string   `yaml:"setup"`
	Teardown string   `yaml:"teardown"`
	Depends  []string `yaml:"depends"`
	Mode     string   `yaml:"mode"`
	Alias    string   `yaml:"alias"`
	Mark     bool     `yaml:"mark"`
}

// Unit couples a runnable unit with its dependency record and whether its
// outcome is recorded for dependents to consult.
type Unit struct {
	domain.Unit
	Record dependency.Record

	// Marked units record their outcome. A unit is marked when it declares
	// a name override, dependencies, a mode, or mark: true; automark marks
	// every unit.
	Marked bool
}

// Plan is a loaded, validated test plan.
type Plan struct {
	Path          string
	Automark      bool
	IgnoreUnknown bool
	Units         []Unit
}

// Load reads and validates the plan file at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return Parse(path, data)
}

// Parse validates plan data. path is used for error messages and as the
// working directory of the plan's units.
func Parse(path string, data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if len(f.Units) == 0 {
		return nil, fmt.Errorf("plan %s declares no units", path)
	}

	p := &Plan{
		Path:          path,
		Automark:      f.Automark,
		IgnoreUnknown: f.IgnoreUnknown,
	}

	dir := filepath.Dir(path)
	seen := make(map[string]bool)
	for i, decl := range f.Units {
		if strings.TrimSpace(decl.Name) == "" {
			return nil, fmt.Errorf("plan %s: unit %d has no name", path, i+1)
		}
		if strings.TrimSpace(decl.Run) == "" {
			return nil, fmt.Errorf("plan %s: unit %q has no run command", path, decl.Name)
		}
		mode, err := dependency.ParseMode(decl.Mode)
		if err != nil {
			return nil, fmt.Errorf("plan %s: unit %q: %w", path, decl.Name, err)
		}
		for _, dep := range decl.Depends {
			if strings.TrimSpace(dep) == "" {
				return nil, fmt.Errorf("plan %s: unit %q has a blank dependency name", path, decl.Name)
			}
		}

		u := Unit{
			Unit: domain.Unit{
				Name:     decl.Name,
				Group:    decl.Group,
				RunCmd:   decl.Run,
				Setup:    decl.Setup,
				Teardown: decl.Teardown,
				Depends:  decl.Depends,
				Mode:     string(mode),
				Dir:      dir,
			},
			Record: dependency.Record{
				// The alias is what dependents must reference once set.
				Name:    decl.Alias,
				Depends: decl.Depends,
				Mode:    mode,
			},
			Marked: f.Automark || decl.Mark || decl.Alias != "" ||
				decl.Mode != "" || len(decl.Depends) > 0,
		}
		if seen[u.ID()] {
			return nil, fmt.Errorf("plan %s: duplicate unit %q", path, u.ID())
		}
		seen[u.ID()] = true
		p.Units = append(p.Units, u)
	}
	return p, nil
}

// Registry builds the dependency registry for the plan's units.
func (p *Plan) Registry() (*dependency.Registry, error) {
	reg := dependency.NewRegistry()
	for _, u := range p.Units {
		if err := reg.Register(u.ID(), u.Record); err != nil {
			return nil, fmt.Errorf("plan %s: %w", p.Path, err)
		}
	}
	return reg, nil
}
