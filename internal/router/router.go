package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/oicpanel/backend/api/handler"
	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/internal/middleware"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Ente    *apiHandler.EnteHandler
	OIC     *apiHandler.OICHandler
	Acuerdo *apiHandler.AcuerdoHandler
	Stats   *apiHandler.StatsHandler
	User    *apiHandler.UserHandler
	Health  *apiHandler.HealthHandler
}

// New wires the route table. Every data-returning route sits behind the
// cookie-auth middleware plus an explicit role allow-list; the
// client-side gate is never the only check.
func New(handlers Handlers, auth middleware.Middleware, roles func(...domain.Role) middleware.Middleware) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes (public by definition)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.GET("/api/v1/auth/session", handlers.Auth.Session)
	r.POST("/api/v1/auth/logout", handlers.Auth.Logout)

	anyRole := roles(domain.AllRoles()...)
	operacion := roles(domain.RoleAdministrador, domain.RoleOperativo)
	seguimiento := roles(domain.RoleAdministrador, domain.RoleSeguimiento)
	admin := roles(domain.RoleAdministrador)

	// Entes públicos
	r.GET("/api/v1/entes", auth(anyRole(handlers.Ente.List)))
	r.GET("/api/v1/entes/{id}", auth(anyRole(handlers.Ente.Get)))
	r.POST("/api/v1/entes", auth(operacion(handlers.Ente.Create)))
	r.PUT("/api/v1/entes/{id}", auth(operacion(handlers.Ente.Update)))
	r.DELETE("/api/v1/entes/{id}", auth(operacion(handlers.Ente.Delete)))

	// OIC directory
	r.GET("/api/v1/oics", auth(anyRole(handlers.OIC.List)))
	r.GET("/api/v1/oics/{id}", auth(anyRole(handlers.OIC.Get)))
	r.POST("/api/v1/oics", auth(operacion(handlers.OIC.Create)))
	r.PUT("/api/v1/oics/{id}", auth(operacion(handlers.OIC.Update)))
	r.DELETE("/api/v1/oics/{id}", auth(operacion(handlers.OIC.Delete)))

	// Acuerdos y seguimientos
	r.GET("/api/v1/acuerdos", auth(anyRole(handlers.Acuerdo.List)))
	r.GET("/api/v1/acuerdos/{id}", auth(anyRole(handlers.Acuerdo.Get)))
	r.POST("/api/v1/acuerdos", auth(seguimiento(handlers.Acuerdo.Create)))
	r.PUT("/api/v1/acuerdos/{id}", auth(seguimiento(handlers.Acuerdo.Update)))
	r.DELETE("/api/v1/acuerdos/{id}", auth(seguimiento(handlers.Acuerdo.Delete)))
	r.GET("/api/v1/acuerdos/{id}/seguimientos", auth(anyRole(handlers.Acuerdo.ListSeguimientos)))
	r.POST("/api/v1/acuerdos/{id}/seguimientos", auth(seguimiento(handlers.Acuerdo.AddSeguimiento)))

	// Estadísticas
	r.GET("/api/v1/estadisticas", auth(anyRole(handlers.Stats.Resumen)))

	// User management
	r.GET("/api/v1/usuarios", auth(admin(handlers.User.List)))
	r.POST("/api/v1/usuarios", auth(admin(handlers.User.Create)))
	r.PUT("/api/v1/usuarios/{id}", auth(admin(handlers.User.Update)))
	r.PUT("/api/v1/usuarios/{id}/password", auth(admin(handlers.User.SetPassword)))
	r.DELETE("/api/v1/usuarios/{id}", auth(admin(handlers.User.Deactivate)))

	return r
}
