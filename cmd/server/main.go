package main

import (
	"log"
	"net/http"

	"github.com/beanery-pos/api/internal/config"
	"github.com/beanery-pos/api/internal/enum"
	"github.com/beanery-pos/api/internal/order"
	"github.com/beanery-pos/api/internal/router"
	"github.com/beanery-pos/api/internal/service"
	"github.com/beanery-pos/api/internal/staff"
	"github.com/beanery-pos/api/internal/ws"
)

func main() {
	cfg := config.Load()

	registry := staff.NewRegistry()
	if _, err := registry.Add(cfg.StaffEmail, cfg.StaffName, enum.RoleOwner, cfg.StaffPassword); err != nil {
		log.Fatalf("seed staff registry: %v", err)
	}

	session := order.NewSession()
	svc := service.NewOrderService(session)

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, registry, svc, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
