package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/galaevents/seating-service/internal/config"
	"github.com/galaevents/seating-service/internal/service"
)

func RegisterHandlers(r *gin.Engine, svc *service.SeatingService, evt config.EventConfig, log *zap.SugaredLogger) {
	api := r.Group("/api")
	{
		api.POST("/search", searchHandler(svc, log))
		api.POST("/draw", drawHandler(svc))
		api.GET("/status", statusHandler(svc, evt))
		api.POST("/notify-all", BearerAuthMiddleware(evt.CronSecret), notifyAllHandler(svc, evt, log))
	}
}

type searchReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func searchHandler(svc *service.SeatingService, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req searchReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
			return
		}
		res, err := svc.Lookup(c, req.Name, req.Email)
		switch {
		case errors.Is(err, service.ErrMissingQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotDrawn):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err != nil:
			// integrity and unexpected faults: detail stays in the logs
			log.Errorf("search failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		default:
			c.JSON(http.StatusOK, gin.H{
				"attendee":   res.Assignment.Attendee,
				"table":      res.Assignment.Table,
				"tablemates": res.Assignment.Tablemates,
				"allTables":  res.AllTables,
				"emailSent":  res.EmailSent,
			})
		}
	}
}

func drawHandler(svc *service.SeatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.RunDraw(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "assigned": n})
	}
}

func statusHandler(svc *service.SeatingService, evt config.EventConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := svc.Stats()
		c.JSON(http.StatusOK, gin.H{
			"stats":     st,
			"eventDate": evt.Date,
			"sendTime":  evt.SendTime,
		})
	}
}

func notifyAllHandler(svc *service.SeatingService, evt config.EventConfig, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc, err := time.LoadLocation(evt.Timezone)
		if err != nil {
			log.Errorf("bad timezone %q: %v", evt.Timezone, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		today := time.Now().In(loc).Format("2006-01-02")
		if today != evt.Date {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       "today is not the event date",
				"currentDate": today,
				"eventDate":   evt.Date,
			})
			return
		}
		report, err := svc.NotifyAll(c)
		if err != nil {
			log.Errorf("bulk notification aborted: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
	}
}
