//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"affiliate_bot/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func testRecord(id string) *domain.PublicationRecord {
	return &domain.PublicationRecord{
		ID: id,
		Submission: domain.Submission{
			ReferralLink: "https://shop.example/x?ref=ABC",
			Photos:       []domain.MediaRef{domain.RemoteMedia("p1"), domain.RemoteMedia("p2"), domain.RemoteMedia("p3")},
			ProductName:  "Red Sneakers",
			Price:        "$59",
			Category:     "shoes",
		},
		Report: domain.PublishReport{
			{Target: domain.DestinationTarget{Locale: "it", DisplayName: "Italiano", Address: "@deals_it"}, Succeeded: true},
			{Target: domain.DestinationTarget{Locale: "en", DisplayName: "English", Address: "@deals_en"}, ErrorDetail: "chat not found"},
			{Target: domain.DestinationTarget{Locale: "es", DisplayName: "Español", Address: "@deals_es"}, Succeeded: true},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Publish() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-publish",
		RoutingKey: "test-routing-key-publish",
		QueueName:  "test-queue-publish",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	rec := testRecord("01JNQ5ZK0000000000000000AB")
	err = pub.Publish(s.ctx, rec)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(rec.ID, msg.MessageId)

	var received PublicationMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(ActionPublished, received.Action)
	s.Equal(rec.ID, received.Publication.ID)
	s.Equal("Red Sneakers", received.Publication.ProductName)
	s.Equal(3, received.Publication.PhotoCount)
	s.Len(received.Publication.Destinations, 3)
	s.False(received.Publication.Destinations[1].Succeeded)
	s.Equal("chat not found", received.Publication.Destinations[1].Error)
	s.True(rec.CreatedAt.Equal(received.Publication.CreatedAt))
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-persist",
		RoutingKey: "test-routing-key-persist",
		QueueName:  "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	err = pub.Publish(s.ctx, testRecord("01JNQ5ZK0000000000000000CD"))
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}