package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMail struct {
	mock.Mock
}

func (m *mockMail) Send(ctx context.Context, msg mail.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMail) Close() error {
	return nil
}

func TestDeliverCode(t *testing.T) {
	client := new(mockMail)
	client.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return assert.Equal(t, []string{"a@x.io"}, msg.To) &&
			assert.Equal(t, "Verification OTP", msg.Subject) &&
			assert.Contains(t, msg.TextBody, "Your OTP is: 012345") &&
			assert.Contains(t, msg.TextBody, "5 minutes") &&
			assert.Contains(t, msg.HTMLBody, "012345")
	})).Return(nil).Once()

	m := New(client, instrument.NewNoop())
	require.NoError(t, m.DeliverCode(context.Background(), "a@x.io", "012345", 5*time.Minute))
	client.AssertExpectations(t)
}

func TestDeliverCode_SendError(t *testing.T) {
	client := new(mockMail)
	client.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	m := New(client, instrument.NewNoop())
	require.EqualError(t, m.DeliverCode(context.Background(), "a@x.io", "123456", time.Minute), "smtp down")
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "1 minute", humanDuration(time.Minute))
	assert.Equal(t, "5 minutes", humanDuration(5*time.Minute))
	assert.Equal(t, "30 seconds", humanDuration(30*time.Second))
	assert.Equal(t, "91 seconds", humanDuration(90*time.Second+time.Millisecond))
	assert.Equal(t, "1 second", humanDuration(0))
}
