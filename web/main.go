package main

import (
	"context"
	"encoding/base64"
	"log"

	attendance "attendly.com/attendly/attendance/core"
	attendancehandlers "attendly.com/attendly/attendance/web/handlers"
	"attendly.com/attendly/core"
	"attendly.com/attendly/infrastructure/communication"
	"attendly.com/attendly/infrastructure/devops"
	reporthandlers "attendly.com/attendly/report/web/handlers"
	"attendly.com/attendly/utils"
	"attendly.com/attendly/web/common"
	"attendly.com/attendly/web/middlewares"
	"github.com/gin-gonic/gin"
)

func main() {
	r := gin.Default()

	cfg, err := devops.LoadAppConfig(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	dm, err := core.New(cfg.DSN, cfg.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	cutoffs := buildCutoffs(cfg)

	var notifier *communication.Slack
	if cfg.SlackBotToken != "" {
		notifier = communication.NewSlack(cfg.SlackBotToken, communication.SlackOption{
			InfoChannelID:  cfg.SlackInfoChannel,
			ErrorChannelID: cfg.SlackErrorChannel,
		})
		common.SetErrorNotifier(notifier)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/v1")
	protected.Use(middlewares.Authentication(jwtSecret))
	admin := protected.Group("")
	admin.Use(middlewares.RequireAdmin())
	{
		attendancehandlers.Register(protected, admin, dm, cutoffs)
		reporthandlers.Register(protected, admin, dm, notifier, cfg.ReportBucket)
	}

	r.Run("0.0.0.0:8080")
}

// buildCutoffs applies config overrides on top of the defaults. Bad
// cutoff values are fatal; silently falling back would shift the
// attendance day boundary.
func buildCutoffs(cfg *devops.AppConfig) attendance.CutoffConfig {
	cutoffs := attendance.DefaultCutoffs()

	if cfg.Timezone != "" {
		cutoffs.Zone = utils.LoadZone(cfg.Timezone, "IST", 5*3600+1800)
	}
	if cfg.FullDayCutoff != "" {
		ct, err := attendance.ParseClockTime(cfg.FullDayCutoff)
		if err != nil {
			log.Fatal("invalid full-day cutoff: ", err)
		}
		cutoffs.FullDay = ct
	}
	if cfg.HalfDayCutoff != "" {
		ct, err := attendance.ParseClockTime(cfg.HalfDayCutoff)
		if err != nil {
			log.Fatal("invalid half-day cutoff: ", err)
		}
		cutoffs.HalfDay = ct
	}

	return cutoffs
}
