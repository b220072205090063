// Package files implements the declarative filesystem engine. A stage
// lists action blocks (copy, copy_dir, move, symlink, hardlink, remove,
// ensure_dir, render) and the engine applies them in order, after
// checking that every destination filesystem has room for what the copy
// actions will write to it.
package files

import (
	"context"
	"fmt"

	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/fsutil"
	"github.com/liftgrid/liftgrid/internal/registry"
	"github.com/liftgrid/liftgrid/internal/render"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the files engine.
type Input struct {
	// MinFreeMB is headroom the preflight check demands on every
	// destination mount on top of what the copy actions need.
	MinFreeMB uint64    `hcl:"min_free_mb,optional"`
	Actions   []*Action `hcl:"action,block"`
}

// Action is one filesystem operation. From/To apply to the two-path kinds,
// Path to remove and ensure_dir, Params to render only.
type Action struct {
	Kind      string            `hcl:"kind,label"`
	From      string            `hcl:"from,optional"`
	To        string            `hcl:"to,optional"`
	Path      string            `hcl:"path,optional"`
	Overwrite bool              `hcl:"overwrite,optional"`
	Params    map[string]string `hcl:"params,optional"`
}

func run(ctx context.Context, input any) error {
	in := input.(*Input)
	logger := ctxlog.FromContext(ctx)

	if err := validate(in); err != nil {
		return err
	}
	if err := checkFreeSpace(ctx, in); err != nil {
		return err
	}

	for i, act := range in.Actions {
		logger.Debug("Applying file action.", "index", i, "kind", act.Kind)
		if err := apply(act); err != nil {
			return fmt.Errorf("action %d (%s): %w", i, act.Kind, err)
		}
	}
	return nil
}

func validate(in *Input) error {
	for i, act := range in.Actions {
		switch act.Kind {
		case "copy", "copy_dir", "move", "symlink", "hardlink", "render":
			if act.From == "" || act.To == "" {
				return fmt.Errorf("action %d (%s): from and to are required", i, act.Kind)
			}
		case "remove", "ensure_dir":
			if act.Path == "" {
				return fmt.Errorf("action %d (%s): path is required", i, act.Kind)
			}
		default:
			return fmt.Errorf("action %d: unknown kind %q", i, act.Kind)
		}
	}
	return nil
}

// checkFreeSpace sums, per destination mount point, the megabytes the copy
// actions will write there and fails when any mount cannot take them plus
// the configured headroom. Nothing has been applied yet at this point.
func checkFreeSpace(ctx context.Context, in *Input) error {
	logger := ctxlog.FromContext(ctx)

	required := map[string]uint64{}
	for _, act := range in.Actions {
		var sizeMB uint64
		switch act.Kind {
		case "copy":
			sizeMB = fsutil.FilesSizeMB([]string{act.From})
		case "copy_dir":
			var err error
			sizeMB, err = fsutil.DirSizeMB(act.From)
			if err != nil {
				return fmt.Errorf("sizing %s: %w", act.From, err)
			}
		default:
			continue
		}
		mount, err := fsutil.FindMountPoint(act.To)
		if err != nil {
			return err
		}
		required[mount] += sizeMB
	}

	for mount, needMB := range required {
		freeMB, err := fsutil.FreeSpaceMB(mount)
		if err != nil {
			return fmt.Errorf("checking free space on %s: %w", mount, err)
		}
		logger.Debug("Checked free space.", "mount", mount, "need_mb", needMB+in.MinFreeMB, "free_mb", freeMB)
		if freeMB < needMB+in.MinFreeMB {
			return fmt.Errorf("not enough free space on %s: need %d MB, have %d MB", mount, needMB+in.MinFreeMB, freeMB)
		}
	}
	return nil
}

func apply(act *Action) error {
	switch act.Kind {
	case "copy":
		return fsutil.Copy(act.From, act.To, act.Overwrite)
	case "copy_dir":
		return fsutil.CopyDir(act.From, act.To, act.Overwrite)
	case "move":
		return fsutil.Rename(act.From, act.To, act.Overwrite)
	case "symlink":
		return fsutil.Symlink(act.From, act.To, act.Overwrite)
	case "hardlink":
		return fsutil.Hardlink(act.From, act.To, act.Overwrite)
	case "remove":
		return fsutil.Remove(act.Path)
	case "ensure_dir":
		return fsutil.EnsureDir(act.Path)
	case "render":
		if !act.Overwrite && fsutil.FileExists(act.To) {
			return nil
		}
		params := make(map[string]any, len(act.Params))
		for k, v := range act.Params {
			params[k] = v
		}
		return render.ToFile(act.From, act.To, params)
	}
	return fmt.Errorf("unknown kind %q", act.Kind)
}

// Register registers the engine with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEngine("files", &registry.RegisteredEngine{
		NewInput: func() any { return new(Input) },
		Run:      run,
	})
}
