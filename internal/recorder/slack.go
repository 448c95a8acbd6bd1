package recorder

import (
	"context"

	slackgo "github.com/slack-go/slack"

	"github.com/firegate-ai/firegate/internal/config"
	"github.com/firegate-ai/firegate/internal/schema"
)

// SlackSink posts tool run outcomes to a Slack channel.
// Input events are never posted; with ErrorsOnly set, successes are skipped too.
type SlackSink struct {
	cfg    *config.SlackSinkConfig
	client *slackgo.Client
}

func NewSlackSink(cfg *config.SlackSinkConfig) *SlackSink {
	return &SlackSink{
		cfg:    cfg,
		client: slackgo.New(cfg.BotToken),
	}
}

func (s *SlackSink) Name() string { return "slack" }

func (s *SlackSink) Notify(ctx context.Context, ev schema.IOEvent) error {
	if ev.Kind == schema.EventInput {
		return nil
	}
	if s.cfg.ErrorsOnly && ev.Kind != schema.EventError {
		return nil
	}

	_, _, err := s.client.PostMessageContext(ctx, s.cfg.Channel,
		slackgo.MsgOptionText(ev.Summary(), false))
	return err
}

var _ schema.Sink = (*SlackSink)(nil)
