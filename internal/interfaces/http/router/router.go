// Package router assembles the versioned API route tree.
package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by handlers that mount routes on the
// versioned API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router owns the gin engine and the list of registrars
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
	groups     []Group
}

// New creates a Router for the given engine and API version
func New(engine *gin.Engine, apiVersion string) *Router {
	if apiVersion == "" {
		apiVersion = "v1"
	}
	return &Router{
		engine:     engine,
		apiVersion: apiVersion,
	}
}

// Register adds registrars to mount during Setup
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Group mounts registrars under an extra prefix inside the API group,
// with any group-scoped middleware applied first. Used for the admin
// surface, which sits behind the role check.
type Group struct {
	Prefix      string
	Middlewares []gin.HandlerFunc
	Registrars  []RouteRegistrar
}

// RegisterGroup adds a middleware-scoped group to mount during Setup
func (r *Router) RegisterGroup(group Group) *Router {
	r.groups = append(r.groups, group)
	return r
}

// Setup mounts all registered routes under /api/<version>
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}

	for _, group := range r.groups {
		g := api.Group(group.Prefix)
		g.Use(group.Middlewares...)
		for _, registrar := range group.Registrars {
			registrar.RegisterRoutes(g)
		}
	}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
