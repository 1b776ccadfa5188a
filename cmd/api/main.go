package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	admhandler "github.com/Tiagotpk/minimal-api/internal/administrator/handler"
	admrepository "github.com/Tiagotpk/minimal-api/internal/administrator/repository"
	admservice "github.com/Tiagotpk/minimal-api/internal/administrator/service"
	"github.com/Tiagotpk/minimal-api/internal/common/auth"
	"github.com/Tiagotpk/minimal-api/internal/common/config"
	"github.com/Tiagotpk/minimal-api/internal/common/db"
	"github.com/Tiagotpk/minimal-api/internal/common/logger"
	"github.com/Tiagotpk/minimal-api/internal/server"
	vehhandler "github.com/Tiagotpk/minimal-api/internal/vehicle/handler"
	vehrepository "github.com/Tiagotpk/minimal-api/internal/vehicle/repository"
	vehservice "github.com/Tiagotpk/minimal-api/internal/vehicle/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, relying on the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger.SetServiceName("vehicle-registry-api")

	pg, err := db.NewPostgres(
		cfg.Database.Host, cfg.Database.Port,
		cfg.Database.User, cfg.Database.Password,
		cfg.Database.Name, cfg.Database.SSLMode,
	)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}
	defer pg.Close()

	if err := pg.RunMigrations("migrations"); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	tokens, err := auth.NewManager(cfg.JWT.Secret)
	if err != nil {
		log.Fatalf("token manager error: %v", err)
	}

	admRepo := admrepository.NewAdministratorRepository(pg.Pool)
	admSvc := admservice.NewAdministratorService(admRepo, tokens)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := admSvc.EnsureSeed(seedCtx, cfg.SeedAdmin.Email, cfg.SeedAdmin.Password); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	vehRepo := vehrepository.NewVehicleRepository(pg.Pool)
	vehSvc := vehservice.NewVehicleService(vehRepo)

	router := server.New(tokens, server.Handlers{
		Administrators: admhandler.NewAdministratorHandler(admSvc),
		Vehicles:       vehhandler.NewVehicleHandler(vehSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("startup", fmt.Sprintf("Listening on %s", addr), "")

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
