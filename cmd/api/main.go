package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/akshayfox/admin-dashboard/internal/analytics"
	"github.com/akshayfox/admin-dashboard/internal/config"
	"github.com/akshayfox/admin-dashboard/internal/modules/auth"
	"github.com/akshayfox/admin-dashboard/internal/modules/dashboard"
	"github.com/akshayfox/admin-dashboard/internal/modules/inventory"
	"github.com/akshayfox/admin-dashboard/internal/modules/order"
	"github.com/akshayfox/admin-dashboard/internal/modules/product"
	"github.com/akshayfox/admin-dashboard/internal/modules/user"
	"github.com/akshayfox/admin-dashboard/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ── Store ───────────────────────────────────────────────
	db := store.New()
	if cfg.SeedData {
		if err := store.Seed(context.Background(), db, user.PasswordHasher(cfg.BcryptCost)); err != nil {
			log.Fatal(err)
		}
		log.Println("Demo data loaded")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userService := user.NewService(db, cfg.BcryptCost)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(db, cfg.JWTSecret, cfg.JWTTTL)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog & Orders ────────────────────────────────────
	productService := product.NewService(db)
	product.NewHandler(productService).RegisterRoutes(router)

	inventory.NewHandler(inventory.NewService(db)).RegisterRoutes(router)

	orderService := order.NewService(db)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Dashboard ───────────────────────────────────────────
	engine := analytics.NewEngine(db, analytics.WithLocation(cfg.Location))
	dashboard.NewHandler(dashboard.NewService(engine)).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	fmt.Printf("Admin dashboard API starting on :%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
