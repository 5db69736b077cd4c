// README: Entry point; loads config, wires modules, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caravan/internal/config"
	httptransport "caravan/internal/http"
	"caravan/internal/infra"
	"caravan/internal/maps"
	"caravan/internal/modules/calendar"
	"caravan/internal/modules/dispatch"
	"caravan/internal/modules/parser"
	"caravan/internal/modules/pricing"
	"caravan/internal/modules/quote"
	"caravan/internal/modules/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	geocoderSvc, err := maps.NewGeocodeService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("geocoder init: %v", err)
	}
	router, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("router init: %v", err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	geocoder := maps.NewCachedGeocoder(geocoderSvc, redisClient)

	fileCache := sheets.NewFileCache(cfg.Sheets.CacheDir)
	fetcher := sheets.NewClient(cfg.Sheets.URLTemplate, fileCache)
	registry := parser.NewRegistry()
	calendarSvc := calendar.NewService(fetcher, registry, cfg.Sheets.IDs,
		time.Duration(cfg.Sheets.TTLHours)*time.Hour)

	resolver := dispatch.NewResolver(calendarSvc, geocoder, router)

	// The override table is optional: without a DSN, static tables apply.
	var overrides pricing.OverrideSource
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer dbPool.Close()
		overrides = pricing.NewStore(dbPool)
	}
	pricingSvc := pricing.NewService(overrides)

	quoteSvc := quote.NewService(resolver, pricingSvc)

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Quotes:   quoteSvc,
		Calendar: calendarSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("caravan-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
