package spdist

import "github.com/hupe1980/spdist/internal/resource"

// ResourceController is a process-wide worker and memory budget.
// All methods are safe for concurrent use and on a nil receiver.
type ResourceController = resource.Controller

// ResourceConfig holds resource limits.
type ResourceConfig = resource.Config

// NewResourceController creates a new resource controller.
//
//	rc := spdist.NewResourceController(spdist.ResourceConfig{MaxWorkers: 8})
//	a := spdist.NewEngine(spdist.WithWorkers(8), spdist.WithResourceController(rc))
//	b := spdist.NewEngine(spdist.WithWorkers(8), spdist.WithResourceController(rc))
func NewResourceController(cfg ResourceConfig) *ResourceController {
	return resource.NewController(cfg)
}
