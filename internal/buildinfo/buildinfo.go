// Package buildinfo exposes the version stamped into the binary and
// checks plan version constraints against it.
package buildinfo

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Version is stamped at build time via
// -ldflags "-X github.com/liftgrid/liftgrid/internal/buildinfo.Version=...".
var Version = "0.0.0-dev"

// CheckConstraint verifies that the running version satisfies a
// constraint expression such as ">= 1.2, < 2.0".
func CheckConstraint(expr string) error {
	v, err := goversion.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("parsing build version %q: %w", Version, err)
	}
	c, err := goversion.NewConstraint(expr)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", expr, err)
	}
	if !c.Check(v.Core()) {
		return fmt.Errorf("version %s does not satisfy required_version %q", Version, expr)
	}
	return nil
}
