// Package backup implements the engine that snapshots files or directories
// into a backup directory under versioned names, keeping only the most
// recent versions when asked to prune.
package backup

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/fsutil"
	"github.com/liftgrid/liftgrid/internal/registry"
	"github.com/liftgrid/liftgrid/internal/versionfile"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the backup engine.
type Input struct {
	Sources []string `hcl:"sources"`
	Dir     string   `hcl:"dir"`

	// Keep prunes each source to its N most recent versions after the
	// new one is written. Zero keeps everything.
	Keep int `hcl:"keep,optional"`
}

func run(ctx context.Context, input any) error {
	in := input.(*Input)
	logger := ctxlog.FromContext(ctx)

	if err := fsutil.EnsureDir(in.Dir); err != nil {
		return fmt.Errorf("creating backup dir %s: %w", in.Dir, err)
	}

	for _, source := range in.Sources {
		if !fsutil.FileExists(source) {
			return fmt.Errorf("backup source %s does not exist", source)
		}

		vf := versionfile.New(filepath.Join(in.Dir, filepath.Base(source)))
		dest, err := vf.Next()
		if err != nil {
			return err
		}
		if err := fsutil.Copy(source, dest, true); err != nil {
			return fmt.Errorf("backing up %s: %w", source, err)
		}
		logger.Debug("Backed up source.", "from", source, "to", dest)

		if err := prune(ctx, vf, in.Keep); err != nil {
			return err
		}
	}

	logger.Info("Backup complete.", "sources", len(in.Sources), "dir", in.Dir)
	return nil
}

// prune removes all but the keep highest-numbered versions. The version
// just written counts toward the quota.
func prune(ctx context.Context, vf *versionfile.File, keep int) error {
	if keep <= 0 {
		return nil
	}

	versions, err := vf.Sorted()
	if err != nil {
		return err
	}
	for _, old := range versions[min(keep, len(versions)):] {
		ctxlog.FromContext(ctx).Debug("Pruning old backup.", "path", old)
		if err := fsutil.Remove(old); err != nil {
			return err
		}
	}
	return nil
}

// Register registers the engine with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEngine("backup", &registry.RegisteredEngine{
		NewInput: func() any { return new(Input) },
		Run:      run,
	})
}
