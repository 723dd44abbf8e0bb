package main

import (
	"context"
	"log"
	"os"
	"redis-music/internal"
	"redis-music/internal/http"
	"redis-music/internal/postgres"
	"redis-music/internal/redis"
	"redis-music/internal/seed"
	"syscall"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/lifecycle"
	"github.com/twitsprout/tools/zap"
)

var version string

type variables struct {
	Addr          string `required:"true" envconfig:"addr"`
	AppName       string `required:"true" envconfig:"app_name"`
	LogLevel      string `required:"false" envconfig:"log_level"`
	StoreBackend  string `required:"false" envconfig:"store_backend" default:"redis"`
	RedisAddr     string `required:"false" envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword string `required:"false" envconfig:"redis_password"`
	RedisDB       int    `required:"false" envconfig:"redis_db"`
	PostgresHost  string `required:"false" envconfig:"postgres_host"`
	PostgresPort  int    `required:"false" envconfig:"postgres_port"`
	PostgresDB    string `required:"false" envconfig:"postgres_db"`
	PostgresUser  string `required:"false" envconfig:"postgres_user"`
	PostgresPass  string `required:"false" envconfig:"postgres_pass"`
	SeedFile      string `required:"false" envconfig:"seed_file"`
}

var v variables

func init() {
	if metadata.OnGCE() {
		port := os.Getenv("PORT")
		err := os.Setenv("ADDR", ":"+port)
		if err != nil {
			log.Fatal(err)
		}
	}

	envconfig.MustProcess("redis_music", &v)
	if v.LogLevel == "" {
		v.LogLevel = "info"
	}
}

func main() {
	logger := zap.New("redis-music", version, os.Stdout)
	if err := logger.SetLevel(v.LogLevel); err != nil {
		logger.Error("failed to set log level", "error", err.Error())
	}

	ctx := context.Background()

	store, closeStore, err := newAlbumStore(ctx, v)
	if err != nil {
		logger.Error("failed to create album store",
			"backend", v.StoreBackend,
			"details", err.Error(),
		)
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("album store ready", "backend", v.StoreBackend)

	if v.SeedFile != "" {
		if _, err := seed.LoadFile(ctx, store, v.SeedFile, logger); err != nil {
			logger.Error("failed to seed album store",
				"seed_file", v.SeedFile,
				"details", err.Error(),
			)
		}
	}

	lc, ctx := lifecycle.New(ctx, logger)
	lc.Start("redis-music root context", func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	h := http.Handler{
		Logger:     logger,
		Version:    version,
		AlbumStore: store,
		AppName:    v.AppName,
	}
	server := httputils.NewServer(v.Addr, h.Handler())
	lc.StartServer(server)
	lc.StartSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	_ = lc.Wait(15 * time.Second)
}

// newAlbumStore builds the store selected by the STORE_BACKEND variable, along
// with a function releasing its connections.
func newAlbumStore(ctx context.Context, v variables) (internal.AlbumStore, func(), error) {
	switch v.StoreBackend {
	case "redis":
		r, err := redis.New(ctx, redis.Config{
			Addr:     v.RedisAddr,
			Password: v.RedisPassword,
			DB:       v.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	case "postgres":
		pg, err := newPostgres(v)
		if err != nil {
			return nil, nil, err
		}
		return pg, func() { _ = pg.Close() }, nil
	default:
		return nil, nil, errors.Errorf("unknown store backend %q", v.StoreBackend)
	}
}

func newPostgres(v variables) (*postgres.Postgres, error) {
	pgConfig := postgres.Config{
		Host:       v.PostgresHost,
		Name:       v.PostgresDB,
		Password:   v.PostgresPass,
		Username:   v.PostgresUser,
		DisableSSL: true,
	}
	// Only use a Postgres port if one was provided
	if v.PostgresPort > 0 {
		pgConfig.Port = v.PostgresPort
	}
	return postgres.New(pgConfig)
}
