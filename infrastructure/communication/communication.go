package communication

import (
	"fmt"

	"github.com/slack-go/slack"
)

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

// NewSlack builds a notifier for the configured channels. A nil
// *Slack is valid; all methods no-op on it so notification stays
// optional.
func NewSlack(token string, options SlackOption) *Slack {
	client := slack.New(token)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	if s == nil || channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.channel(false), message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.channel(true), message)
}

func (s *Slack) channel(isError bool) string {
	if s == nil {
		return ""
	}
	if isError {
		return s.options.ErrorChannelID
	}
	return s.options.InfoChannelID
}
