package inbound

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/venture/internal/notification/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/config"
	"github.com/shandysiswandi/venture/internal/pkg/goroutine"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/messaging"
	"github.com/shandysiswandi/venture/internal/shared/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessage struct {
	topic   string
	body    []byte
	headers []messaging.Header
}

func (m fakeMessage) Body() []byte { return m.body }
func (m fakeMessage) Key() []byte { return nil }
func (m fakeMessage) Headers() []messaging.Header { return m.headers }
func (m fakeMessage) ID() string { return "" }
func (m fakeMessage) Topic() string { return m.topic }
func (m fakeMessage) Timestamp() time.Time { return time.Time{} }
func (m fakeMessage) Ack(context.Context) error { return nil }
func (m fakeMessage) Nack(context.Context) error { return nil }

type stubUsecase struct {
	mu         sync.Mutex
	registered []usecase.ConsumeUserRegisteredInput
	comments   []usecase.ConsumeBlogCommentCreatedInput
	cIDs       []string
	err        error
}

func (s *stubUsecase) ConsumeUserRegistered(ctx context.Context, in usecase.ConsumeUserRegisteredInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registered = append(s.registered, in)
	s.cIDs = append(s.cIDs, instrument.GetCorrelationID(ctx))
	return s.err
}

func (s *stubUsecase) ConsumeBlogCommentCreated(ctx context.Context, in usecase.ConsumeBlogCommentCreatedInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, in)
	s.cIDs = append(s.cIDs, instrument.GetCorrelationID(ctx))
	return s.err
}

type fixedUUID string

func (f fixedUUID) Generate() string { return string(f) }

func TestMQHandler_UserRegisteredNotification(t *testing.T) {
	uc := &stubUsecase{}
	h := &MQHandler{uc: uc, uuid: fixedUUID("generated"), ins: instrument.NewNoop()}

	err := h.UserRegisteredNotification(context.Background(), fakeMessage{
		topic:   event.UserRegisteredDestination,
		body:    []byte(`{"user_id":7,"email":"ana@venture.dev","name":"Ana"}`),
		headers: []messaging.Header{{Key: event.HeaderCorrelationID, Value: []byte("cid-1")}},
	})
	require.NoError(t, err)
	assert.Equal(t, []usecase.ConsumeUserRegisteredInput{{UserID: 7, Email: "ana@venture.dev", Name: "Ana"}}, uc.registered)
	assert.Equal(t, []string{"cid-1"}, uc.cIDs)

	// malformed payloads are acked and dropped
	require.NoError(t, h.UserRegisteredNotification(context.Background(), fakeMessage{body: []byte("{")}))
	assert.Len(t, uc.registered, 1)

	uc.err = errors.New("smtp down")
	err = h.UserRegisteredNotification(context.Background(), fakeMessage{body: []byte(`{"user_id":8}`)})
	assert.ErrorIs(t, err, uc.err)
	assert.Equal(t, "generated", uc.cIDs[1])
}

func TestMQHandler_BlogCommentCreatedNotification(t *testing.T) {
	uc := &stubUsecase{}
	h := &MQHandler{uc: uc, uuid: fixedUUID("generated"), ins: instrument.NewNoop()}

	err := h.BlogCommentCreatedNotification(context.Background(), fakeMessage{
		topic: event.BlogCommentCreatedDestination,
		body: []byte(`{"comment_id":3,"blog_id":4,"blog_title":"Go","author_id":1,` +
			`"author_email":"ana@venture.dev","commenter_id":2,"commenter_name":"Brian","content":"hi"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, []usecase.ConsumeBlogCommentCreatedInput{{
		CommentID:     3,
		BlogID:        4,
		BlogTitle:     "Go",
		AuthorID:      1,
		AuthorEmail:   "ana@venture.dev",
		CommenterID:   2,
		CommenterName: "Brian",
		Content:       "hi",
	}}, uc.comments)
	assert.Equal(t, []string{"generated"}, uc.cIDs)
}

type fakeConsumer struct {
	mu      sync.Mutex
	sources []string
	msgs    map[string]messaging.Message
}

func (f *fakeConsumer) Consume(ctx context.Context, source string, handler messaging.Handler, _ ...messaging.ConsumeOption) error {
	f.mu.Lock()
	f.sources = append(f.sources, source)
	msg := f.msgs[source]
	f.mu.Unlock()

	if msg != nil {
		return handler(ctx, msg)
	}
	return nil
}

func TestRegisterMQConsumer(t *testing.T) {
	cfg, err := config.NewViperFromBytes("yaml", []byte(
		"modules:\n  notification:\n    consumer_names: "+event.UserRegisteredConsumerNotification+"\n"))
	require.NoError(t, err)

	uc := &stubUsecase{}
	consumer := &fakeConsumer{msgs: map[string]messaging.Message{
		event.UserRegisteredDestination: fakeMessage{body: []byte(`{"user_id":7,"email":"ana@venture.dev","name":"Ana"}`)},
	}}
	routine := goroutine.NewManager(4)

	started := RegisterMQConsumer(context.Background(), cfg, routine, consumer, fixedUUID("c"), uc, instrument.NewNoop())
	require.NoError(t, routine.Wait())

	assert.Equal(t, []string{event.UserRegisteredConsumerNotification}, started)
	assert.Equal(t, []string{event.UserRegisteredDestination}, consumer.sources)
	assert.Len(t, uc.registered, 1)
	assert.Empty(t, uc.comments)
}

func TestRegisterMQConsumer_NoneEnabled(t *testing.T) {
	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: venture\n"))
	require.NoError(t, err)

	consumer := &fakeConsumer{}
	routine := goroutine.NewManager(4)

	started := RegisterMQConsumer(context.Background(), cfg, routine, consumer, fixedUUID("c"), &stubUsecase{}, instrument.NewNoop())
	require.NoError(t, routine.Wait())

	assert.Empty(t, started)
	assert.Empty(t, consumer.sources)
}
