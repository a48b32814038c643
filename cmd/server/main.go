package main

import (
	"fmt"
	"net/http"

	"github.com/galaevents/seating-service/internal/config"
	"github.com/galaevents/seating-service/internal/directory"
	"github.com/galaevents/seating-service/internal/logger"
	"github.com/galaevents/seating-service/internal/mailer"
	"github.com/galaevents/seating-service/internal/service"
	httptransport "github.com/galaevents/seating-service/internal/transport/http"
)

func main() {
	// 1. load config
	cfg, err := config.Load("internal/config/config.yaml")
	if err != nil {
		panic(fmt.Errorf("load config: %w", err))
	}

	// 2. init logger
	log, err := logger.NewLogger(false)
	if err != nil {
		panic(fmt.Errorf("init logger: %w", err))
	}
	defer log.Sync()

	// 3. directory store (time-seeded draw source)
	store := directory.New(cfg.Catalog, nil)

	// 4. mail dispatcher: real API client when a key is configured,
	// logging simulator otherwise
	var mail mailer.Mailer
	if cfg.Mail.APIKey != "" {
		mail = mailer.NewResendClient(cfg.Mail.APIKey, cfg.Mail.Timeout())
	} else {
		log.Infof("no mail API key configured, sends will be simulated")
		mail = mailer.NewSimulator(log)
	}

	// 5. service
	svc := service.NewSeatingService(store, mail, cfg.Mail.From, cfg.Mail.SendDelay(), log)

	// 6. gin router
	router := httptransport.NewRouter(svc, cfg, log)

	// 7. serve
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Infof("seating-server listening on %s, event date %s", addr, cfg.Event.Date)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
