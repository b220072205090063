// Package hclloader implements config.Loader for HCL plan files.
//
// Structural stage attributes (labels, depends_on, timeout) must be
// literals: they describe the shape of the plan and are read before any
// evaluation context exists. Argument values may be full expressions;
// their bodies are kept raw and decoded by the executor.
package hclloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/liftgrid/liftgrid/internal/config"
	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/fsutil"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates an HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot describes the top-level blocks a plan file may carry. There
// is deliberately no remain field: an unexpected block is a config
// error, not something to skip.
type fileRoot struct {
	Plans  []*planBlock   `hcl:"plan,block"`
	Locals []*localsBlock `hcl:"locals,block"`
	Stages []*stageBlock  `hcl:"stage,block"`
}

type planBlock struct {
	Name            string `hcl:"name"`
	RequiredVersion string `hcl:"required_version,optional"`
}

type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type stageBlock struct {
	EngineType string          `hcl:"engine,label"`
	Name       string          `hcl:"name,label"`
	DependsOn  []string        `hcl:"depends_on,optional"`
	Timeout    string          `hcl:"timeout,optional"`
	Arguments  *argumentsBlock `hcl:"arguments,block"`
}

type argumentsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Load parses every .hcl file reachable from paths and merges the
// results into one model. Files are visited in argument order,
// directories recursively.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := discoverFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no plan files (*.hcl) found under %s", strings.Join(paths, ", "))
	}
	logger.Debug("Discovered plan files.", "count", len(files))

	model := &config.Model{Locals: make(map[string]hcl.Expression)}
	parser := hclparse.NewParser()
	planFile := ""
	localsFile := make(map[string]string)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("decoding %s: %w", file, diags)
		}

		for _, p := range root.Plans {
			if model.Plan != nil {
				return nil, fmt.Errorf("duplicate plan block in %s, already declared in %s", file, planFile)
			}
			model.Plan = &config.PlanMeta{Name: p.Name, RequiredVersion: p.RequiredVersion}
			planFile = file
		}

		for _, lb := range root.Locals {
			attrs, diags := lb.Body.JustAttributes()
			if diags.HasErrors() {
				return nil, fmt.Errorf("decoding locals in %s: %w", file, diags)
			}
			for name, attr := range attrs {
				if prev, ok := localsFile[name]; ok {
					return nil, fmt.Errorf("duplicate local %q in %s, already declared in %s", name, file, prev)
				}
				model.Locals[name] = attr.Expr
				localsFile[name] = file
			}
		}

		for _, s := range root.Stages {
			model.Stages = append(model.Stages, translateStage(s))
		}
	}

	logger.Debug("Plan loading complete.", "stages", len(model.Stages), "locals", len(model.Locals))
	return model, nil
}

// translateStage converts the HCL-specific stage schema into the
// agnostic model.
func translateStage(s *stageBlock) *config.Stage {
	out := &config.Stage{
		EngineType: s.EngineType,
		Name:       s.Name,
		DependsOn:  s.DependsOn,
		Timeout:    s.Timeout,
	}
	if s.Arguments != nil {
		out.Arguments = s.Arguments.Body
	}
	return out
}

// discoverFiles expands paths into a deduplicated list of .hcl files.
// Directories are searched recursively; named files must exist.
func discoverFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("plan path %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("searching %s: %w", path, err)
			}
			for _, f := range found {
				add(f)
			}
			continue
		}
		if filepath.Ext(path) != ".hcl" {
			return nil, fmt.Errorf("plan path %s: not an .hcl file", path)
		}
		add(path)
	}
	return all, nil
}
