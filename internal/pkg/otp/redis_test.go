package otp

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opt, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opt)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	client := newRedisClient(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	t.Run("set if expired writes once", func(t *testing.T) {
		remaining, err := store.SetIfExpired(ctx, "otp:a@x.com", "483920", 300*time.Second)
		require.NoError(t, err)
		assert.Zero(t, remaining)

		val, err := client.Get(ctx, "otp:a@x.com").Result()
		require.NoError(t, err)
		assert.Equal(t, "483920", val)

		ttl, err := client.TTL(ctx, "otp:a@x.com").Result()
		require.NoError(t, err)
		assert.InDelta(t, 300, ttl.Seconds(), 2)

		remaining, err = store.SetIfExpired(ctx, "otp:a@x.com", "999999", 300*time.Second)
		require.NoError(t, err)
		assert.Positive(t, remaining)
		assert.LessOrEqual(t, remaining, 300*time.Second)

		val, err = client.Get(ctx, "otp:a@x.com").Result()
		require.NoError(t, err)
		assert.Equal(t, "483920", val)
	})

	t.Run("set after forced expiry overwrites", func(t *testing.T) {
		require.NoError(t, client.Del(ctx, "otp:a@x.com").Err())

		remaining, err := store.SetIfExpired(ctx, "otp:a@x.com", "590172", 300*time.Second)
		require.NoError(t, err)
		assert.Zero(t, remaining)

		val, err := client.Get(ctx, "otp:a@x.com").Result()
		require.NoError(t, err)
		assert.Equal(t, "590172", val)
	})

	t.Run("consume", func(t *testing.T) {
		_, err := store.SetIfExpired(ctx, "otp:b@y.com", "000111", time.Minute)
		require.NoError(t, err)

		outcome, err := store.Consume(ctx, "otp:b@y.com", "00111")
		require.NoError(t, err)
		assert.Equal(t, OutcomeInvalid, outcome)

		outcome, err = store.Consume(ctx, "otp:b@y.com", "000111")
		require.NoError(t, err)
		assert.Equal(t, OutcomeValid, outcome)

		outcome, err = store.Consume(ctx, "otp:b@y.com", "000111")
		require.NoError(t, err)
		assert.Equal(t, OutcomeExpired, outcome)

		exists, err := client.Exists(ctx, "otp:b@y.com").Result()
		require.NoError(t, err)
		assert.Zero(t, exists)
	})

	t.Run("natural expiry", func(t *testing.T) {
		_, err := store.SetIfExpired(ctx, "otp:c@z.com", "135790", 50*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(150 * time.Millisecond)

		outcome, err := store.Consume(ctx, "otp:c@z.com", "135790")
		require.NoError(t, err)
		assert.Equal(t, OutcomeExpired, outcome)
	})

	t.Run("issuer and verifier end to end", func(t *testing.T) {
		deliverer := &mockDeliverer{}
		var delivered string
		deliverer.On("DeliverCode", mock.Anything, "e2e@x.com", mock.AnythingOfType("string"), 300*time.Second).
			Run(func(args mock.Arguments) { delivered = args.String(2) }).
			Return(nil).Once()

		issuer, err := NewIssuer(store, deliverer, 300*time.Second)
		require.NoError(t, err)
		verifier := NewVerifier(store)

		res, err := issuer.Issue(ctx, "e2e@x.com")
		require.NoError(t, err)
		require.Equal(t, OutcomeSentCode, res.Outcome)
		require.Len(t, delivered, CodeLength)

		res, err = issuer.Issue(ctx, "e2e@x.com")
		require.NoError(t, err)
		assert.Equal(t, OutcomeMustWait, res.Outcome)

		outcome, err := verifier.Verify(ctx, "e2e@x.com", delivered)
		require.NoError(t, err)
		assert.Equal(t, OutcomeValid, outcome)

		outcome, err = verifier.Verify(ctx, "e2e@x.com", delivered)
		require.NoError(t, err)
		assert.Equal(t, OutcomeExpired, outcome)

		deliverer.AssertExpectations(t)
	})
}
