package main

import (
	"log"
	"net/http"
	_ "time/tzdata" // profile timezones resolve without system zoneinfo

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	log.SetPrefix("lg/flux-api: ")

	// .env is optional in deployed environments where variables are injected.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env loaded: %v", err)
	}
	cfg := loadConfig()
	if cfg.DBURL == "" {
		log.Fatal("DB_URL is required")
	}

	pool := getDBPool(cfg.DBURL)
	defer pool.Close()

	h := newHandler(&pgStore{db: pool}, cfg)

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	log.Printf("listening on %s", cfg.HTTPAddress)
	if err := http.ListenAndServe(cfg.HTTPAddress, corsHandler); err != nil {
		log.Fatal(err)
	}
}
