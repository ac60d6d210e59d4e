package redispub_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"deliveryescrow/internal/adapters/out/redispub"
	"deliveryescrow/internal/core/domain/model/delivery"

	redisclient "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PublisherIntegrationTestSuite verifies notification broadcasting against a
// real Redis instance.
type PublisherIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redisclient.Client
	publisher *redispub.Publisher
}

func (suite *PublisherIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redisclient.NewClient(&redisclient.Options{Addr: endpoint})
	suite.Require().NoError(suite.client.Ping(ctx).Err())

	suite.publisher = redispub.NewPublisher(suite.client, slog.Default())
}

func (suite *PublisherIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PublisherIntegrationTestSuite) TestPublish_DeliversOnKindChannel() {
	ctx := context.Background()

	sub := suite.client.Subscribe(ctx, "delivery.started")
	defer sub.Close()

	// Wait for the subscription to be established before publishing.
	_, err := sub.Receive(ctx)
	suite.Require().NoError(err)

	event := delivery.StartedEvent{
		Hash:      "00ff",
		StartTime: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(suite.publisher.Publish(ctx, event))

	select {
	case msg := <-sub.Channel():
		var got delivery.StartedEvent
		suite.Require().NoError(json.Unmarshal([]byte(msg.Payload), &got))
		suite.Equal(event.Hash, got.Hash)
		suite.True(event.StartTime.Equal(got.StartTime))
	case <-time.After(5 * time.Second):
		suite.Fail("timed out waiting for notification")
	}
}

func TestPublisherIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherIntegrationTestSuite))
}
