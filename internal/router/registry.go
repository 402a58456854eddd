package router

import "github.com/gin-gonic/gin"

const apiPrefix = "/api/v1"

// Registry collects feature modules and mounts them on the versioned API
// group in one place, so route registration order stays deterministic.
type Registry struct {
	Engine  *gin.Engine
	API     *gin.RouterGroup
	shared  []gin.HandlerFunc
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group(apiPrefix)}
}

// Use adds middleware applied to every module's routes.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.shared = append(r.shared, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll mounts shared middleware and then every module.
func (r *Registry) RegisterAll() {
	r.API.Use(r.shared...)
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
