package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestHandleMessage(t *testing.T) {
	var got []BookingEvent
	handler := func(_ context.Context, e BookingEvent) error {
		got = append(got, e)
		return nil
	}

	handleMessage(context.Background(), kafka.Message{
		Value: []byte(`{"type":"booking_created","booking_id":21,"flight_id":7,"seat":"12A","email":"anna@example.com"}`),
	}, handler)

	assert.Len(t, got, 1)
	assert.Equal(t, int64(21), got[0].BookingID)
	assert.Equal(t, "12A", got[0].Seat)
}

func TestHandleMessage_SkipsGarbage(t *testing.T) {
	called := false
	handleMessage(context.Background(), kafka.Message{Value: []byte("not json")}, func(context.Context, BookingEvent) error {
		called = true
		return nil
	})
	assert.False(t, called)
}

func TestHandleMessage_HandlerErrorDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		handleMessage(context.Background(), kafka.Message{Value: []byte(`{"type":"booking_created"}`)},
			func(context.Context, BookingEvent) error { return errors.New("smtp down") })
	})
}
