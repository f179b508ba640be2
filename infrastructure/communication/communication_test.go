package communication

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A nil notifier must be a silent no-op so callers can post without
// checking whether Slack is configured.
func TestNilSlackIsNoOp(t *testing.T) {
	var s *Slack

	assert.NoError(t, s.Info("hello"))
	assert.NoError(t, s.Error("boom"))
}

func TestPostMessageSkipsEmptyChannel(t *testing.T) {
	s := NewSlack("xoxb-test", SlackOption{InfoChannelID: "", ErrorChannelID: ""})

	// No channel configured: nothing to post, no API call, no error.
	assert.NoError(t, s.Info("hello"))
	assert.NoError(t, s.Error("boom"))
}
