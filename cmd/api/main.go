package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/yurymalaver/salon-crm/internal/ai"
	"github.com/yurymalaver/salon-crm/internal/config"
	dbpkg "github.com/yurymalaver/salon-crm/internal/db"
	infraRepo "github.com/yurymalaver/salon-crm/internal/infra/repository"
	"github.com/yurymalaver/salon-crm/internal/routes"
	"github.com/yurymalaver/salon-crm/internal/store"
	"github.com/yurymalaver/salon-crm/internal/sync"
)

func main() {

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.WithError(err).Fatal("REDIS_URL inválida")
	}
	rdb := redis.NewClient(redisOpts)

	localStore := store.New(store.NewRedisPersister(rdb), log)

	reservationRepo := infraRepo.NewReservationGormRepository(db)
	bus := sync.NewRedisBus(rdb)

	feed := sync.NewFeed(reservationRepo, bus, log)
	if err := feed.Start(context.Background()); err != nil {
		// El feed queda en estado de error; el CRM sigue sirviendo y la
		// administradora puede reintentar desde la interfaz.
		log.WithError(err).Error("la suscripción a reservas no se pudo establecer")
	}
	defer feed.Stop()

	gen := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, log)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, feed, bus, localStore, gen)

	log.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
