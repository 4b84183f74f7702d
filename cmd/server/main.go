package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/config"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/database"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/handler"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/queue"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/repository"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/router"
	queuepublisher "github.com/jhasmany-fernandez/portfolio-backend/internal/service"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.Migrate(ctx, db, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword, cfg.BcryptCost)
	cancel()
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	uploads, err := storage.NewUploads(cfg.UploadDir)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	rdb := config.NewRedisClient() // nil when Redis is unreachable; cache degrades to pass-through

	// Background consumer appends content events to logs/content.log.
	go func() {
		if err := queue.StartContentConsumer(); err != nil {
			log.Printf("queue consumer stopped: %v", err)
		}
	}()

	h := &handler.ContentHandler{
		Home:                repository.NewHomeSectionRepo(db),
		Skills:              repository.NewSkillRepo(db),
		Services:            repository.NewServiceRepo(db),
		Testimonials:        repository.NewTestimonialRepo(db),
		Footer:              repository.NewFooterRepo(db),
		ServicesSection:     repository.NewSectionRepo(db, repository.TableServicesSection),
		TestimonialsSection: repository.NewSectionRepo(db, repository.TableTestimonialsSection),

		Uploads:         uploads,
		Redis:           rdb,
		CacheCfg:        config.LoadCacheConfig(),
		Publish:         queuepublisher.PublishContentChanged,
		DefaultAuthorID: cfg.DefaultAuthorID,
	}
	a := handler.NewAuthHandler(cfg, repository.NewUserRepo(db))

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterAuth(e, a, cfg.JWTSecret)
	router.RegisterContent(e, h, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
