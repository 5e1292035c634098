package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/tattoo-studio-api/internal/services"
)

func TestAMQPConfirmationQueue_Enqueue(t *testing.T) {
	broker := new(MockBroker)
	broker.On("Publish", mock.MatchedBy(func(body []byte) bool {
		var c services.Confirmation
		return json.Unmarshal(body, &c) == nil && c == sampleConfirmation
	})).Return(nil).Once()

	q := services.NewAMQPConfirmationQueue(broker)
	require.NoError(t, q.Enqueue(context.Background(), sampleConfirmation))
	broker.AssertExpectations(t)

	broker.On("Publish", mock.Anything).Return(errors.New("channel closed")).Once()
	assert.Error(t, q.Enqueue(context.Background(), sampleConfirmation))
}

func TestAMQPConfirmationQueue_Run(t *testing.T) {
	good, err := json.Marshal(sampleConfirmation)
	require.NoError(t, err)

	broker := new(MockBroker)
	broker.On("Consume", mock.Anything).Run(func(args mock.Arguments) {
		handle := args.Get(0).(func([]byte))
		handle(good)
		handle([]byte("{not json"))
	}).Return(nil)

	var delivered []services.Confirmation
	q := services.NewAMQPConfirmationQueue(broker)
	err = q.Run(context.Background(), func(_ context.Context, c services.Confirmation) {
		delivered = append(delivered, c)
	})
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, sampleConfirmation, delivered[0])
}
