// Package push delivers reminder alerts to connected UIs over a Redis
// pub/sub channel. It is the production implementation of the notify.Platform
// port; browsers subscribe (via the web gateway) and render the payloads as
// native notifications.
package push

import (
	"context"
	"encoding/json"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/farmflow/backend/usecase/notify"
)

const defaultChannel = "farmflow:alerts"

type event struct {
	Kind               string `json:"kind"`
	Title              string `json:"title,omitempty"`
	Body               string `json:"body,omitempty"`
	Tag                string `json:"tag"`
	Link               string `json:"link,omitempty"`
	RequireInteraction bool   `json:"require_interaction,omitempty"`
	CloseAfterMillis   int64  `json:"close_after_ms,omitempty"`
	SentAt             int64  `json:"sent_at"`
}

// Publisher implements notify.Platform on top of Redis pub/sub.
type Publisher struct {
	client  *redislib.Client
	channel string
	logger  *zap.Logger
	now     func() time.Time
}

func NewPublisher(client *redislib.Client, channel string, logger *zap.Logger) *Publisher {
	if channel == "" {
		channel = defaultChannel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		client:  client,
		channel: channel,
		logger:  logger,
		now:     time.Now,
	}
}

func (p *Publisher) IsSupported() bool {
	return p != nil && p.client != nil
}

// Permission reports granted whenever a client is configured: the server side
// of the pipe can always publish. The default/denied states only arise from
// platforms that gate delivery on user consent (e.g. a browser bridge).
func (p *Publisher) Permission() notify.Permission {
	if !p.IsSupported() {
		return notify.PermissionDefault
	}
	return notify.PermissionGranted
}

func (p *Publisher) RequestPermission(ctx context.Context) (notify.Permission, error) {
	if !p.IsSupported() {
		return notify.PermissionDefault, notify.ErrUnsupported
	}
	return notify.PermissionGranted, nil
}

// Show publishes the alert. The returned handle publishes a matching close
// event so subscribers can dismiss an alert that is still on screen.
func (p *Publisher) Show(ctx context.Context, alert notify.Alert) (notify.Handle, error) {
	if !p.IsSupported() {
		return nil, notify.ErrUnsupported
	}

	payload, err := json.Marshal(event{
		Kind:               "show",
		Title:              alert.Title,
		Body:               alert.Body,
		Tag:                alert.Tag,
		Link:               alert.Link,
		RequireInteraction: alert.RequireInteraction,
		CloseAfterMillis:   alert.CloseAfter.Milliseconds(),
		SentAt:             p.now().UnixMilli(),
	})
	if err != nil {
		return nil, err
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return nil, err
	}
	p.logger.Debug("alert published", zap.String("tag", alert.Tag), zap.String("channel", p.channel))

	return &handle{publisher: p, tag: alert.Tag}, nil
}

type handle struct {
	publisher *Publisher
	tag       string
}

func (h *handle) Close() error {
	payload, err := json.Marshal(event{
		Kind:   "close",
		Tag:    h.tag,
		SentAt: h.publisher.now().UnixMilli(),
	})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return h.publisher.client.Publish(ctx, h.publisher.channel, payload).Err()
}

var _ notify.Platform = (*Publisher)(nil)
