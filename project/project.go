// Package project discovers tik documents on disk and carries the
// project-level configuration.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Project represents a directory tree of tik documents.
type Project struct {
	RootDir   string
	Config    *Config
	Documents []string // document paths relative to RootDir, sorted
}

// Load scans the current directory for a tik project.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom scans the given directory for tik documents. Configuration is
// read from opentik.yaml in the root when present.
func LoadFrom(rootDir string) (*Project, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("read project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", rootDir)
	}

	cfg, err := LoadConfig(rootDir)
	if err != nil {
		return nil, err
	}

	docs, err := scanDocuments(rootDir, cfg.Extensions)
	if err != nil {
		return nil, err
	}

	return &Project{
		RootDir:   rootDir,
		Config:    cfg,
		Documents: docs,
	}, nil
}

// DocumentPath resolves a relative document path against the project root.
func (p *Project) DocumentPath(rel string) string {
	return filepath.Join(p.RootDir, rel)
}

func scanDocuments(rootDir string, extensions []string) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories do not hold documents.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !hasExtension(d.Name(), extensions) {
			return nil
		}
		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		docs = append(docs, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	sort.Strings(docs)
	return docs, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
