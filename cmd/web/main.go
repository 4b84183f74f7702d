package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/config"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadWeb()
	srv, err := web.NewServer(cfg)
	if err != nil {
		log.Fatalf("web: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	srv.Register(e)

	addr := ":" + cfg.Port
	log.Printf("web listening on %s (api=%s)", addr, cfg.APIBaseURL)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
