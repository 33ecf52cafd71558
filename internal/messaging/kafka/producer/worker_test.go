package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-geoattend/internal/messaging/kafka"
	kafkaMock "go-geoattend/internal/messaging/kafka/mock"
	"go-geoattend/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failFor map[string]error
	written []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err, ok := w.failFor[string(m.Key)]; ok {
			return err
		}
		w.written = append(w.written, m)
	}
	return nil
}

func header(m kafkago.Message, key string) (string, bool) {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value), true
		}
	}
	return "", false
}

func TestProcessBatch(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ClaimPending(ctx, 20).Return([]kafka.OutboxEvent{
			{ID: "o1", RequestID: "req-1", AggregateType: "employee_checkin", AggregateID: "c1", EventType: "checkin_recorded", Topic: "t", Payload: []byte(`{}`)},
			{ID: "o2", AggregateType: "employee_checkin", AggregateID: "c2", EventType: "checkin_recorded", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o2").Return(nil)

		sent, err := producer.ProcessBatch(ctx, repo, writer, logger, 20)
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		require.Len(t, writer.written, 2)

		first := writer.written[0]
		assert.Equal(t, "c1", string(first.Key))
		rid, ok := header(first, "request_id")
		assert.True(t, ok)
		assert.Equal(t, "req-1", rid)

		_, ok = header(writer.written[1], "request_id")
		assert.False(t, ok)
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]error{"c1": errors.New("leader not available")}}

		repo.EXPECT().ClaimPending(ctx, 5).Return([]kafka.OutboxEvent{
			{ID: "o1", AggregateID: "c1", Topic: "t", Payload: []byte(`{}`)},
			{ID: "o2", AggregateID: "c2", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o2").Return(nil)

		sent, err := producer.ProcessBatch(ctx, repo, writer, logger, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("mark sent failure is not counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ClaimPending(ctx, 5).Return([]kafka.OutboxEvent{
			{ID: "o1", AggregateID: "c1", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o1").Return(errors.New("tx aborted"))

		sent, err := producer.ProcessBatch(ctx, repo, &fakeWriter{}, logger, 5)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("claim failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimPending(ctx, 5).Return(nil, errors.New("db down"))

		sent, err := producer.ProcessBatch(ctx, repo, &fakeWriter{}, logger, 5)
		assert.EqualError(t, err, "db down")
		assert.Zero(t, sent)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimPending(ctx, 5).Return(nil, nil)

		sent, err := producer.ProcessBatch(ctx, repo, &fakeWriter{}, logger, 5)
		assert.NoError(t, err)
		assert.Zero(t, sent)
	})
}

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		producer.ProcessOutboxEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), producer.WorkerConfig{})
		close(done)
	}()
	<-done
}
