package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*logger, *test.Hook) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	return &logger{entry: logrus.NewEntry(base)}, hook
}

func TestWithFieldsDevelopmentKeepsSyncFields(t *testing.T) {
	t.Setenv("APP_ENV", "")
	l, hook := newTestLogger()

	l.WithFields(Fields{
		"trigger":   "scheduled",
		"sync_id":   int64(7),
		"inserted":  2,
		"updated":   1,
		"processed": 24,
		"stored":    24,
		"mapped":    3,
		"unix_hour": int64(474000),
		"ignored":   "x",
	}).Info("sync: finished")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	for _, key := range []string{"trigger", "sync_id", "inserted", "updated", "processed", "stored", "mapped", "unix_hour"} {
		assert.Contains(t, entry.Data, key)
	}
	assert.NotContains(t, entry.Data, "ignored")
}

func TestWithFieldDevelopmentDropsUnknownKey(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	l, hook := newTestLogger()

	l.WithField("unknown", 1).WithField("trigger", "manual").Info("msg")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "manual", entry.Data["trigger"])
	assert.NotContains(t, entry.Data, "unknown")
}

func TestWithFieldsProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	l, hook := newTestLogger()

	l.WithFields(Fields{"ignored": "x", "stored": 1}).Info("msg")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "x", entry.Data["ignored"])
	assert.Equal(t, 1, entry.Data["stored"])
}

func TestWithContextAddsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "")
	l, hook := newTestLogger()

	ctx, id := WithCorrelationID(context.Background())
	l.WithContext(ctx).Info("msg")

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, id, hook.LastEntry().Data[correlationIDField])
	assert.Equal(t, id, GetCorrelationID(ctx))
}
