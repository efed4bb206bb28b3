package messaging

import (
	"context"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/atomic"
)

// kafkaMessage binds a fetched record to the reader that owns its offset.
type kafkaMessage struct {
	reader *kafka.Reader
	msg    kafka.Message
	done   *atomic.Bool
}

func newKafkaMessage(r *kafka.Reader, msg kafka.Message) *kafkaMessage {
	return &kafkaMessage{reader: r, msg: msg, done: atomic.NewBool(false)}
}

func (m *kafkaMessage) Body() []byte         { return m.msg.Value }
func (m *kafkaMessage) Key() []byte          { return m.msg.Key }
func (m *kafkaMessage) Topic() string        { return m.msg.Topic }
func (m *kafkaMessage) Timestamp() time.Time { return m.msg.Time }

// ID is topic/partition/offset, unique within a cluster.
func (m *kafkaMessage) ID() string {
	return m.msg.Topic + "/" + strconv.Itoa(m.msg.Partition) + "/" + strconv.FormatInt(m.msg.Offset, 10)
}

func (m *kafkaMessage) Headers() []Header {
	var out []Header
	for _, h := range m.msg.Headers {
		out = append(out, Header{Key: h.Key, Value: h.Value})
	}
	return out
}

func (m *kafkaMessage) Ack(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.done.CompareAndSwap(false, true) {
		return nil
	}
	return m.reader.CommitMessages(ctx, m.msg)
}

// Nack leaves the offset uncommitted so the record comes back after a rebalance or restart.
func (m *kafkaMessage) Nack(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.done.Store(true)
	return nil
}
