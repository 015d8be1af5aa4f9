package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantwatch/quantwatch/internal/config"
)

// The long help doubles as the reference for environment variables, so
// it has to track the names envconfig actually binds and the shipped
// defaults.
func TestRunHelpMatchesEnvironment(t *testing.T) {
	help := runCmd().Long

	for _, name := range []string{
		"DATA_DIR",
		"DATABASE_URL",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"SCHEDULE_TIME",
		"RUN_ON_START",
		"EMAIL_SMTP_SERVER",
		"EMAIL_SMTP_PORT",
		"EMAIL_SENDER",
		"EMAIL_PASSWORD",
		"EMAIL_RECIPIENT",
		"SCRAPE_EVENTS",
		"SCRAPE_JOBS",
		"SCRAPE_BLOGS",
		"SCRAPE_REPORTS",
		"SCRAPE_VIDEOS",
	} {
		assert.Contains(t, help, name)
	}

	assert.Contains(t, help, "default: "+config.DefaultScheduleTime)
	assert.NotContains(t, help, "DB_URL")
	assert.NotContains(t, help, "SENDER_EMAIL")
}
