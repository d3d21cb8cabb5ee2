package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"solar_household/internal/api"
	"solar_household/internal/config"
	"solar_household/internal/logging"
	"solar_household/internal/simulator"
	"solar_household/internal/solar"
	"solar_household/internal/store"
	"solar_household/internal/ws"
)

func main() {
	configPath := flag.String("config", "", "path to YAML server config")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.DefaultServer()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadServer(*configPath)
		if err != nil {
			logging.New("info").WithError(err).Fatal("loading server config")
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if env := os.Getenv("ADDR"); env != "" && *addr == "" {
		cfg.Addr = env
	}

	log := logging.New(cfg.LogLevel)

	st := store.New()
	clock := simulator.NewClock(solar.DefaultProfile())

	// Pre-run the household from config, if one is given, so the API has a
	// browsable run immediately after startup.
	if cfg.HouseholdFile != "" {
		h, err := config.LoadHousehold(cfg.HouseholdFile)
		if err != nil {
			log.WithError(err).Fatal("loading household config")
		}
		run, err := clock.Run(h, cfg.DefaultDays, nil)
		if err != nil {
			log.WithError(err).Fatal("initial simulation")
		}
		sr := st.Add(h, run)
		log.WithField("run_id", sr.ID).Info("initial simulation stored")
	}

	hub := ws.NewHub(log)
	wsHandler := ws.NewHandler(hub, clock, st, log)

	handler := api.NewHandler(clock, st, log, cfg.DefaultDays)
	router := api.NewRouter(handler, wsHandler, log)

	corsOpts := cors.Options{AllowedOrigins: cfg.AllowedOrigins}
	if len(cfg.AllowedOrigins) == 0 {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	srv := cors.New(corsOpts).Handler(router)

	log.WithField("addr", cfg.Addr).Info("starting server")
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
