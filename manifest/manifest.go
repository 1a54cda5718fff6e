// Package manifest materializes a project collection from reactor.yaml
// descriptor files on disk. It is the only place the tool touches the
// filesystem for project metadata; the engine itself consumes the finished
// collection and performs no I/O.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/LegacyCodeHQ/reactor/project"
)

// FileName is the per-directory project descriptor file.
const FileName = "reactor.yaml"

// file is the on-disk shape of one project descriptor.
type file struct {
	Namespace    string   `yaml:"namespace"`
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version,omitempty"`
	Parent       string   `yaml:"parent,omitempty"`
	Modules      []string `yaml:"modules,omitempty"`
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// LoadCollection reads the descriptor at rootDir and walks its declared
// modules depth-first, materializing the full collection. Module entries are
// subdirectory names relative to the declaring project. The walk order (a
// project before its modules, modules in declared order) is the discovery
// order the engine uses for deterministic tie-breaking.
func LoadCollection(rootDir string) (*project.Collection, error) {
	var descriptors []*project.Descriptor
	if err := loadTree(rootDir, &descriptors); err != nil {
		return nil, err
	}

	collection, err := project.NewCollection(descriptors)
	if err != nil {
		return nil, err
	}
	return collection, nil
}

func loadTree(dir string, out *[]*project.Descriptor) error {
	descriptor, modules, err := LoadDescriptor(filepath.Join(dir, FileName))
	if err != nil {
		return err
	}
	*out = append(*out, descriptor)

	for i, module := range modules {
		moduleDir := filepath.Join(dir, module)
		if _, err := os.Stat(filepath.Join(moduleDir, FileName)); err != nil {
			return fmt.Errorf("project %s declares module %q but %s has no %s: %w",
				descriptor.Coordinate, module, moduleDir, FileName, err)
		}
		before := len(*out)
		if err := loadTree(moduleDir, out); err != nil {
			return err
		}
		// The module's own coordinate is the first descriptor the subtree
		// produced; record it on the parent for informational purposes.
		descriptor.Modules[i] = (*out)[before].Coordinate
	}

	return nil
}

// LoadDescriptor reads and validates a single reactor.yaml file. The returned
// module names are directory names still to be resolved by the caller; the
// descriptor's Modules slice is pre-sized to match.
func LoadDescriptor(path string) (*project.Descriptor, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read project descriptor: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if f.Namespace == "" || f.Name == "" {
		return nil, nil, fmt.Errorf("%s: namespace and name are required", path)
	}
	if f.Version != "" {
		if _, err := semver.NewVersion(f.Version); err != nil {
			return nil, nil, fmt.Errorf("%s: invalid version %q: %w", path, f.Version, err)
		}
	}

	d := &project.Descriptor{
		Coordinate: project.NewCoordinate(f.Namespace, f.Name),
		Version:    f.Version,
		Modules:    make([]project.Coordinate, len(f.Modules)),
	}

	if f.Parent != "" {
		parent, err := project.ParseCoordinate(f.Parent)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: invalid parent: %w", path, err)
		}
		d.Parent = &parent
	}

	for _, dep := range f.Dependencies {
		coord, err := project.ParseCoordinate(dep)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: invalid dependency: %w", path, err)
		}
		d.Dependencies = append(d.Dependencies, coord)
	}

	return d, f.Modules, nil
}
