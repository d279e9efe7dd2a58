package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/mocks"
	"github.com/feral-file/ff-marketplace/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic("failed to initialize logger for tests: " + err.Error())
	}
	os.Exit(m.Run())
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "MARKETPLACE_EVENTS",
		MaxReconnects:  5,
		ReconnectWait:  time.Second,
		ConnectionName: "ff-marketplace-test",
	}
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(nc, js, nil).Times(1)
	js.EXPECT().EnsureStream(gomock.Any(), "MARKETPLACE_EVENTS", []string{"events.>"}).Return(nil).Times(1)
	nc.EXPECT().Close().Times(1)

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
	require.NoError(t, err)
	pub.Close()
}

func TestNewPublisher_Errors(t *testing.T) {
	t.Run("connect failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available")).Times(1)

		_, err := jetstream.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to NATS")
	})

	t.Run("stream failure closes the connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		nc := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)
		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil).Times(1)
		js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("jetstream not enabled")).Times(1)
		nc.EXPECT().Close().Times(1)

		_, err := jetstream.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
		require.Error(t, err)
	})
}

func TestPublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil).Times(1)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	edition := 2
	txID := "0xabc"
	event := &domain.MarketEvent{
		EventType:     domain.EventTypeOwnershipRecorded,
		ItemID:        7,
		EditionNumber: &edition,
		WalletAddress: "0x1111111111111111111111111111111111111111",
		TransactionID: &txID,
		Timestamp:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	js.EXPECT().
		Publish(gomock.Any(), "events.ownership.recorded", gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, data []byte, opts ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var decoded domain.MarketEvent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, int64(7), decoded.ItemID)
			assert.Equal(t, 2, *decoded.EditionNumber)
			return &natsjs.PubAck{Stream: "MARKETPLACE_EVENTS", Sequence: 1}, nil
		}).
		Times(1)

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
	require.NoError(t, err)

	require.NoError(t, pub.PublishEvent(context.Background(), event))
}

func TestPublishEvent_MarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil).Times(1)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	jsonAdapter.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("unsupported value")).Times(1)
	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), natsJS, jsonAdapter)
	require.NoError(t, err)

	err = pub.PublishEvent(context.Background(), &domain.MarketEvent{EventType: domain.EventTypeItemMinted})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal event")
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.item.minted", jetstream.Subject(domain.EventTypeItemMinted))
}
