package instrument

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx := SetCorrelationID(context.Background(), "cid-1")
	assert.Equal(t, "cid-1", GetCorrelationID(ctx))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestMaskAttr(t *testing.T) {
	keys := buildMaskKeys([]string{"Password", " otp ", ""})

	assert.Equal(t, "***", maskAttr(slog.String("password", "secret1"), keys).Value.String())
	assert.Equal(t, "ana@example.com", maskAttr(slog.String("email", "ana@example.com"), keys).Value.String())

	masked := maskAttr(slog.String("body", `{"email":"a@b.co","otp":"123456"}`), keys)
	assert.JSONEq(t, `{"email":"a@b.co","otp":"***"}`, masked.Value.String())

	group := maskAttr(slog.Group("req", slog.String("otp", "123456")), keys)
	assert.Equal(t, "***", group.Value.Group()[0].Value.String())
}

func TestMaskAttr_AlwaysMasked(t *testing.T) {
	keys := buildMaskKeys(nil)

	assert.Equal(t, "***", maskAttr(slog.String("Code", "123456"), keys).Value.String())
	assert.Equal(t, "***", maskAttr(slog.String("token", "abc"), keys).Value.String())

	raw := maskAttr(slog.Any("msg_body", []byte(`[{"otp":"123456","email":"a@b.co"}]`)), keys)
	assert.JSONEq(t, `[{"otp":"***","email":"a@b.co"}]`, raw.Value.String())

	headers := maskAttr(slog.Any("headers", map[string]string{"Authorization": "Bearer x", "Accept": "*/*"}), keys)
	assert.Equal(t, map[string]any{"Authorization": "***", "Accept": "*/*"}, headers.Value.Any())

	plain := maskAttr(slog.String("note", "not json {"), keys)
	assert.Equal(t, "not json {", plain.Value.String())
}

func TestMaskHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &maskHandler{handler: slog.NewJSONHandler(&buf, nil), maskKeys: buildMaskKeys(nil)}

	slog.New(h).With("password", "secret1").Info("hello", "email", "ana@venture.dev")
	assert.NotContains(t, buf.String(), "secret1")
	assert.Contains(t, buf.String(), "ana@venture.dev")
}

func TestNewNoop(t *testing.T) {
	ins, err := New(context.Background(), &Config{Enabled: false, ServiceName: "venture"})
	assert.NoError(t, err)
	assert.NotNil(t, ins.Tracer("t"))
	assert.NoError(t, ins.Shutdown(context.Background()))
}
