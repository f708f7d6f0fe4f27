package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"affiliate_bot/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "rabbitmq"),
	}, nil
}

const ActionPublished = "published"

type PublicationMessage struct {
	Action      string             `json:"action"`
	Publication PublicationPayload `json:"publication"`
	Timestamp   time.Time          `json:"timestamp"`
}

type PublicationPayload struct {
	ID           string               `json:"id"`
	ReferralLink string               `json:"referral_link,omitempty"`
	ProductName  string               `json:"product_name"`
	Price        string               `json:"price"`
	Category     string               `json:"category"`
	PhotoCount   int                  `json:"photo_count"`
	Destinations []DestinationPayload `json:"destinations"`
	CreatedAt    time.Time            `json:"created_at"`
}

type DestinationPayload struct {
	Locale    string `json:"locale"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Succeeded bool   `json:"succeeded"`
	Error     string `json:"error,omitempty"`
}

func newPublicationMessage(rec *domain.PublicationRecord, now time.Time) PublicationMessage {
	destinations := make([]DestinationPayload, 0, len(rec.Report))
	for _, o := range rec.Report {
		destinations = append(destinations, DestinationPayload{
			Locale:    o.Target.Locale,
			Name:      o.Target.DisplayName,
			Address:   o.Target.Address,
			Succeeded: o.Succeeded,
			Error:     o.ErrorDetail,
		})
	}

	return PublicationMessage{
		Action: ActionPublished,
		Publication: PublicationPayload{
			ID:           rec.ID,
			ReferralLink: rec.Submission.ReferralLink,
			ProductName:  rec.Submission.ProductName,
			Price:        rec.Submission.Price,
			Category:     rec.Submission.Category,
			PhotoCount:   len(rec.Submission.Photos),
			Destinations: destinations,
			CreatedAt:    rec.CreatedAt,
		},
		Timestamp: now.UTC(),
	}
}

func (r *RabbitMQ) Publish(ctx context.Context, rec *domain.PublicationRecord) error {
	body, err := json.Marshal(newPublicationMessage(rec, time.Now()))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    rec.ID,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published publication event",
		"publication_id", rec.ID,
		"destinations", len(rec.Report),
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
