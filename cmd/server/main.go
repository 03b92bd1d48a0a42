package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"arena_backend/internal/app/di"
	"arena_backend/internal/app/router"
	authadapters "arena_backend/internal/feature/auth/adapters"
	authentity "arena_backend/internal/feature/auth/domain/entity"
	authhandler "arena_backend/internal/feature/auth/transport/handler"
	authusecase "arena_backend/internal/feature/auth/usecase"
	statsentity "arena_backend/internal/feature/stats/domain/entity"
	statshandler "arena_backend/internal/feature/stats/transport/handler"
	statsusecase "arena_backend/internal/feature/stats/usecase"
	tournamentsadapters "arena_backend/internal/feature/tournaments/adapters"
	tournamententity "arena_backend/internal/feature/tournaments/domain/entity"
	tournamentshandler "arena_backend/internal/feature/tournaments/transport/handler"
	tournamentsusecase "arena_backend/internal/feature/tournaments/usecase"
	usersadapters "arena_backend/internal/feature/users/adapters"
	usersentity "arena_backend/internal/feature/users/domain/entity"
	usershandler "arena_backend/internal/feature/users/transport/handler"
	usersusecase "arena_backend/internal/feature/users/usecase"
	"arena_backend/internal/platform/db"
	jwtpkg "arena_backend/internal/platform/jwt"
	"arena_backend/internal/platform/password"
	redisclient "arena_backend/internal/platform/redis"
	"arena_backend/internal/shared/ratelimiter"
)

const (
	defaultPort     = "8080"
	defaultTokenTTL = 24 * time.Hour

	// Failed login attempts allowed per email within one window.
	loginAttemptLimit  = 5
	loginAttemptWindow = time.Minute
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	// The token secret has no usable default. Refusing to start beats
	// issuing tokens anyone can forge.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	tokenTTL := defaultTokenTTL
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid JWT_TTL %q: %v", raw, err)
		}
		tokenTTL = d
	}

	conn := db.Open(db.LoadConfig(),
		&authentity.User{},
		&usersentity.Profile{},
		&usersentity.Friendship{},
		&statsentity.Match{},
		&statsentity.PlayerStats{},
		&tournamententity.Tournament{},
		&tournamententity.Participant{},
	)

	// Redis is optional; without it the leaderboard skips the cache.
	rdb, err := redisclient.NewRedisClient()
	if err != nil {
		slog.Warn("redis unavailable; leaderboard caching disabled", "error", err)
		rdb = nil
	}

	// Auth
	userRepo := authadapters.NewUserMySQL(conn)
	hasher := password.NewHasher(password.MinCost)
	tokens := jwtpkg.NewGenerator(secret, tokenTTL)
	loginLimiter := ratelimiter.NewKeyLimiter(loginAttemptLimit, loginAttemptWindow)
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens, loginLimiter)
	authH := authhandler.NewAuthHandler(authUC)

	// Users
	usersUC := usersusecase.NewUsersUsecase(
		usersadapters.NewProfileMySQL(conn),
		usersadapters.NewFriendMySQL(conn),
		usersadapters.NewUserDirectoryMySQL(conn),
	)
	usersH := usershandler.NewUsersHandler(usersUC)

	// Stats
	statsUC := statsusecase.NewStatsUsecase(di.NewStatsRepository(rdb, conn))
	statsH := statshandler.NewStatsHandler(statsUC)

	// Tournaments record their matches through the stats pipeline so
	// aggregates stay consistent.
	tournamentsUC := tournamentsusecase.NewTournamentsUsecase(
		tournamentsadapters.NewTournamentMySQL(conn),
		statsUC,
	)
	tournamentsH := tournamentshandler.NewTournamentsHandler(tournamentsUC)

	r := router.NewRouter(secret, authH, usersH, statsH, tournamentsH)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	slog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
