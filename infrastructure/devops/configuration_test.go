package devops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DSN", "user:pass@tcp(localhost:3306)/attendly")
	t.Setenv("ATTENDLY_SIGNING_SECRET", "c2VjcmV0")
	t.Setenv("ATTENDLY_TIMEZONE", "Asia/Kolkata")
	t.Setenv("ATTENDLY_FULL_DAY_CUTOFF", "10:15")
	t.Setenv("ATTENDLY_HALF_DAY_CUTOFF", "13:30")
	t.Setenv("ATTENDLY_REPORT_BUCKET", "attendly-reports")
	t.Setenv("ATTENDLY_MAX_CONNECTIONS", "25")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_INFO_CHANNEL", "C0INFO")
	t.Setenv("SLACK_ERROR_CHANNEL", "C0ERROR")

	cfg := fromEnv()

	assert.Equal(t, "user:pass@tcp(localhost:3306)/attendly", cfg.DSN)
	assert.Equal(t, "c2VjcmV0", cfg.SigningSecret)
	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)
	assert.Equal(t, "10:15", cfg.FullDayCutoff)
	assert.Equal(t, "13:30", cfg.HalfDayCutoff)
	assert.Equal(t, "attendly-reports", cfg.ReportBucket)
	assert.Equal(t, 25, cfg.MaxConnections)
	assert.Equal(t, "xoxb-test", cfg.SlackBotToken)
	assert.Equal(t, "C0INFO", cfg.SlackInfoChannel)
	assert.Equal(t, "C0ERROR", cfg.SlackErrorChannel)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ATTENDLY_MAX_CONNECTIONS", "")
	t.Setenv("SLACK_BOT_TOKEN", "")

	cfg := fromEnv()

	assert.Equal(t, 10, cfg.MaxConnections)
	assert.Empty(t, cfg.SlackBotToken)
}
