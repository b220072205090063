package app

import (
	"github.com/liftgrid/liftgrid/internal/registry"
	"github.com/liftgrid/liftgrid/modules/backup"
	"github.com/liftgrid/liftgrid/modules/echo"
	"github.com/liftgrid/liftgrid/modules/files"
	"github.com/liftgrid/liftgrid/modules/http_check"
	"github.com/liftgrid/liftgrid/modules/http_seed"
	"github.com/liftgrid/liftgrid/modules/shell"
)

// coreModules is the built-in engine set registered when the caller does not
// supply its own modules.
var coreModules = []registry.Module{
	&backup.Module{},
	&echo.Module{},
	&files.Module{},
	&http_check.Module{},
	&http_seed.Module{},
	&shell.Module{},
}
