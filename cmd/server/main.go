package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/metro-ticket-booking/internal/config"
	"github.com/iliyamo/metro-ticket-booking/internal/database"
	"github.com/iliyamo/metro-ticket-booking/internal/handler"
	"github.com/iliyamo/metro-ticket-booking/internal/queue"
	"github.com/iliyamo/metro-ticket-booking/internal/repository"
	"github.com/iliyamo/metro-ticket-booking/internal/router"
	queue_publisher "github.com/iliyamo/metro-ticket-booking/internal/service"
	"github.com/iliyamo/metro-ticket-booking/internal/ticket"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Bootstrap(ctx, db); err != nil {
		log.Fatalf("database: %v", err)
	}

	stationRepo := repository.NewStationRepo(db)
	priceRepo := repository.NewPriceRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	if err := database.SeedCatalog(ctx, stationRepo, priceRepo); err != nil {
		log.Fatalf("database: %v", err)
	}

	catalog := ticket.CatalogFromRepos(stationRepo, priceRepo)
	validator := ticket.NewValidator(catalog)
	fare := ticket.NewFareCalculator(catalog)
	tickets := ticket.NewService(bookingRepo)

	catalogHandler := handler.NewCatalogHandler(stationRepo, priceRepo)
	bookingHandler := handler.NewBookingHandler(bookingRepo, validator, fare)
	bookingHandler.PublishTicket = queue_publisher.PublishTicketIssued
	ticketHandler := handler.NewTicketHandler(tickets)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable, catalog cache disabled")
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, catalogHandler, config.LoadCacheConfig(), rdb)
	router.RegisterBookings(e, bookingHandler)
	router.RegisterTickets(e, ticketHandler)

	// Background consumer writes issued tickets to logs/ticket.log and
	// reconnects on broker failures.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket-consumer: stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
