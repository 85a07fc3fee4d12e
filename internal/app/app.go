package app

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/cinebox/cinema-box-office/internal/cinema"
	"github.com/cinebox/cinema-box-office/internal/domain"
	"github.com/cinebox/cinema-box-office/internal/metadata"
	"github.com/cinebox/cinema-box-office/internal/repository"
	appvalidator "github.com/cinebox/cinema-box-office/internal/validator"
	"github.com/cinebox/cinema-box-office/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	cinema    *cinema.Cinema
	store     domain.CinemaRepository
	input     *bufio.Scanner
	out       io.Writer
}

type config struct {
	store         string
	dataFile      string
	adminPassword string
	omdb          struct {
		baseURL string
		apiKey  string
	}
	redis struct {
		url string
	}
}

func Run() error {
	var cfg config

	// A local .env supplies the secrets the flags default from.
	_ = godotenv.Load()

	flag.StringVar(&cfg.store, "store", "file", "Snapshot store (file|redis)")
	flag.StringVar(&cfg.dataFile, "data-file", "cinema_data.json", "Path of the file snapshot store")
	flag.StringVar(&cfg.adminPassword, "admin-password", "admin123", "Password for the admin menu")

	flag.StringVar(&cfg.omdb.baseURL, "omdb-url", "http://www.omdbapi.com", "OMDb API base URL")
	flag.StringVar(&cfg.omdb.apiKey, "omdb-key", os.Getenv("OMDB_API_KEY"), "OMDb API key")

	flag.StringVar(&cfg.redis.url, "redis-url", os.Getenv("REDIS_URL"), "Redis URL for the redis snapshot store")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	validator := appvalidator.NewValidator()

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	snap, err := store.Load(ctx)
	if err != nil {
		return err
	}

	metadataRepo := metadata.NewOMDbClient(cfg.omdb.baseURL, cfg.omdb.apiKey, validator)

	app := &application{
		config:    cfg,
		logger:    logger,
		validator: validator,
		cinema:    cinema.FromSnapshot(snap, metadataRepo, cinema.WithLogger(logger)),
		store:     store,
		input:     bufio.NewScanner(os.Stdin),
		out:       os.Stdout,
	}

	logger.Info("cinema loaded", "store", cfg.store, "titles", app.cinema.TitleCount())

	app.roleMenu()

	if err := store.Save(ctx, app.cinema.Snapshot()); err != nil {
		logger.Error("saving cinema state", "error", err)
		return err
	}

	logger.Info("cinema state saved", "store", cfg.store)

	return nil
}

func newStore(cfg config) (domain.CinemaRepository, error) {
	switch cfg.store {
	case "file":
		return repository.NewFileCinemaRepository(cfg.dataFile), nil
	case "redis":
		client, err := newRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisCinemaRepository(client), nil
	default:
		return nil, fmt.Errorf("unknown snapshot store %q", cfg.store)
	}
}

func newRedisClient(cfg config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.redis.url)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}
