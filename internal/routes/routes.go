package routes

import (
	"github.com/gin-gonic/gin"

	"luvo_backend/internal/auth"
	"luvo_backend/internal/handlers"
	"luvo_backend/internal/middleware"
	"luvo_backend/internal/models"
)

// RegisterRoutes wires every handler group under /api. The public auth
// group carries no middleware; everything else requires a valid token,
// and role-scoped groups additionally require the matching role.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, tokens *auth.TokenManager) {
	api := router.Group("/api")

	authGroup := api.Group("/auth")
	appHandlers.Auth.RegisterRoutes(authGroup)

	roleGroup := api.Group("/role")
	roleGroup.Use(middleware.AuthMiddleware(tokens))
	appHandlers.Role.RegisterRoutes(roleGroup)

	candidateGroup := api.Group("/candidate")
	candidateGroup.Use(middleware.AuthMiddleware(tokens), middleware.RequireRoles(models.UserRoleCandidate))
	appHandlers.Candidate.RegisterRoutes(candidateGroup)

	recruiterGroup := api.Group("/recruiter")
	recruiterGroup.Use(middleware.AuthMiddleware(tokens), middleware.RequireRoles(models.UserRoleRecruiter))
	appHandlers.Recruiter.RegisterRoutes(recruiterGroup)

	counselorGroup := api.Group("/career-counselor")
	counselorGroup.Use(middleware.AuthMiddleware(tokens), middleware.RequireRoles(models.UserRoleCounselor))
	appHandlers.Counselor.RegisterRoutes(counselorGroup)
}
