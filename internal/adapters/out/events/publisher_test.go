package events_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"tourdispatch/internal/adapters/out/events"
	"tourdispatch/internal/core/ports"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func validatedEvent() ports.TourEvent {
	return ports.TourEvent{
		ID:         "e1",
		Type:       ports.TourValidated,
		City:       "Lyon",
		Date:       "2024-03-05",
		OrderIDs:   []string{"O1", "O2"},
		Status:     "in_progress",
		DriverID:   "D1",
		VehicleID:  "V1",
		OccurredAt: time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher(t *testing.T) {
	t.Run("should key messages by tour and encode the event", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher, err := events.NewKafkaPublisher(writer, "tour-events")
		require.NoError(t, err)

		require.NoError(t, publisher.Publish(t.Context(), validatedEvent()))

		require.Len(t, writer.messages, 1)
		msg := writer.messages[0]
		assert.Equal(t, "tour-events", msg.Topic)
		assert.Equal(t, "2024-03-05/Lyon", string(msg.Key))

		var decoded ports.TourEvent
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, validatedEvent(), decoded)
	})

	t.Run("should wrap writer failures", func(t *testing.T) {
		down := errors.New("broker down")
		publisher, err := events.NewKafkaPublisher(&fakeWriter{err: down}, "tour-events")
		require.NoError(t, err)

		err = publisher.Publish(t.Context(), validatedEvent())

		require.ErrorIs(t, err, down)
	})

	t.Run("should close the writer", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher, err := events.NewKafkaPublisher(writer, "tour-events")
		require.NoError(t, err)

		require.NoError(t, publisher.Close())
		assert.True(t, writer.closed)
	})

	t.Run("should require a topic", func(t *testing.T) {
		_, err := events.NewKafkaPublisher(&fakeWriter{}, "")
		assert.ErrorIs(t, err, events.ErrTopicIsRequired)
	})
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	publisher := events.NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, publisher.Publish(t.Context(), validatedEvent()))

	assert.Contains(t, buf.String(), `"type":"tour.validated"`)
	assert.Contains(t, buf.String(), `"component":"tour-events"`)
}
