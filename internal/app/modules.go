package app

import (
	"github.com/fredshone/factory/internal/registry"
	"github.com/fredshone/factory/modules/source"
)

// coreModules is the definitive list of all modules that are compiled into
// the factory binary. Every other producer type is declared in factory files.
var coreModules = []registry.Module{
	&source.Module{},
}
