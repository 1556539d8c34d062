package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/tastetrek/taste-trek-api/internal/catalog"
	"github.com/tastetrek/taste-trek-api/internal/config"
	"github.com/tastetrek/taste-trek-api/internal/logging"
	"github.com/tastetrek/taste-trek-api/internal/repository/memory"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
	"github.com/tastetrek/taste-trek-api/internal/repository/postgres"
	"github.com/tastetrek/taste-trek-api/internal/service"
	transport "github.com/tastetrek/taste-trek-api/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, writer))
		}
	}

	ctx := context.Background()
	store, sessions := openStorage(cfg)

	if err := catalog.Seed(ctx, store); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	auth, err := service.NewAuthService(ctx, service.AuthConfig{
		IssuerURL:     cfg.OIDCIssuerURL,
		ClientID:      cfg.OIDCClientID,
		ClientSecret:  cfg.OIDCClientSecret,
		Scopes:        cfg.OIDCScopes,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		CallbackURL:   cfg.CallbackURLOverride,
	}, store, sessions)
	if err != nil {
		log.Fatalf("init auth: %v", err)
	}
	if !auth.Enabled() {
		log.Println("oidc provider not configured, login flow disabled")
	}

	catalogSvc := service.NewCatalogService(store)
	favoriteSvc := service.NewFavoriteService(store)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterCatalog(e, catalogSvc)
	transport.RegisterFavorites(e, auth, favoriteSvc)
	transport.RegisterAuth(e, auth)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// openStorage prefers Postgres and falls back to the in-memory store when no
// DATABASE_URL is set or the database is unreachable. The process always
// serves, a broken database only costs persistence.
func openStorage(cfg config.Config) (ports.Storage, ports.SessionRepository) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory storage")
		return memory.NewStore(), memory.NewSessionRepo()
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Printf("postgres unavailable, falling back to in-memory storage: %v", err)
		return memory.NewStore(), memory.NewSessionRepo()
	}
	if err := postgres.Migrate(db); err != nil {
		log.Printf("migrations failed, falling back to in-memory storage: %v", err)
		_ = db.Close()
		return memory.NewStore(), memory.NewSessionRepo()
	}

	return postgres.NewStore(db), postgres.NewSessionRepo(db)
}
