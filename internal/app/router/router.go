// Package router assembles the HTTP routing table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "arena_backend/internal/feature/auth/transport/handler"
	statshandler "arena_backend/internal/feature/stats/transport/handler"
	tournamentshandler "arena_backend/internal/feature/tournaments/transport/handler"
	usershandler "arena_backend/internal/feature/users/transport/handler"
	"arena_backend/internal/platform/http/handler"
	jwtmw "arena_backend/internal/platform/jwt"
)

// NewRouter wires every handler into a gin engine. jwtSecret is the
// verification key for the guarded routes; all routes below the auth group
// require a valid Bearer token.
func NewRouter(
	jwtSecret string,
	auth *authhandler.AuthHandler,
	users *usershandler.UsersHandler,
	stats *statshandler.StatsHandler,
	tournaments *tournamentshandler.TournamentsHandler,
) *gin.Engine {
	r := gin.Default()

	// Must come before any route registration: gin snapshots each route's
	// handler chain when the route is added.
	r.Use(cors.Default())

	// Open routes
	r.GET("/healthz", handler.Health)
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	// Everything else requires a verified token
	guarded := r.Group("/")
	guarded.Use(jwtmw.AuthRequired(jwtSecret))
	{
		guarded.GET("/me", auth.Me)
		guarded.POST("/logout", auth.Logout)

		guarded.GET("/profile", users.GetProfile)
		guarded.PUT("/profile", users.UpdateProfile)
		guarded.POST("/friends", users.AddFriend)
		guarded.GET("/friends", users.ListFriends)
		guarded.DELETE("/friends/:id", users.RemoveFriend)

		guarded.POST("/matches", stats.RecordMatch)
		guarded.GET("/stats/:id", stats.GetStats)
		guarded.GET("/leaderboard", stats.Leaderboard)

		guarded.POST("/tournaments", tournaments.Create)
		guarded.GET("/tournaments", tournaments.List)
		guarded.POST("/tournaments/:id/join", tournaments.Join)
		guarded.POST("/tournaments/:id/matches", tournaments.RecordMatch)
	}

	return r
}
