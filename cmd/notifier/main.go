// The notifier waits for the configured send moment on the event date, then
// triggers the server's bulk-notification endpoint with the shared secret.
// Run it alongside the server instead of wiring up external cron.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/galaevents/seating-service/internal/config"
	"github.com/galaevents/seating-service/internal/logger"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "base URL of the seating server")
	flag.Parse()

	cfg, err := config.Load("internal/config/config.yaml")
	if err != nil {
		panic(fmt.Errorf("load config: %w", err))
	}

	log, err := logger.NewLogger(false)
	if err != nil {
		panic(fmt.Errorf("init logger: %w", err))
	}
	defer log.Sync()

	loc, err := time.LoadLocation(cfg.Event.Timezone)
	if err != nil {
		log.Fatalf("load timezone %q: %v", cfg.Event.Timezone, err)
	}
	sendAt, err := time.ParseInLocation("2006-01-02 15:04", cfg.Event.Date+" "+cfg.Event.SendTime, loc)
	if err != nil {
		log.Fatalf("parse event schedule: %v", err)
	}
	if time.Now().After(sendAt) {
		log.Fatalf("send moment %s already passed", sendAt)
	}

	log.Infof("waiting until %s to trigger notifications", sendAt)
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for now := range ticker.C {
		if !now.Before(sendAt) {
			break
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *serverURL+"/api/notify-all", nil)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.Event.CronSecret)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("trigger notifications: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("notify-all returned %d: %s", resp.StatusCode, body)
	}
	log.Infof("notifications dispatched: %s", body)
}
