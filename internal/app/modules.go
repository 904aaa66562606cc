package app

import (
	"github.com/vk/flowgrid/internal/listop"
	"github.com/vk/flowgrid/internal/registry"
)

// coreModules is the definitive list of all node modules that are compiled
// into the flowgrid binary.
var coreModules = []registry.Module{
	&listop.Module{},
}
