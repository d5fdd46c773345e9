package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/platboard/internal/sqlite"
	"github.com/mesh-intelligence/platboard/pkg/types"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	store := sqlite.NewStore()
	require.NoError(t, store.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { store.Detach() })
	return NewLog(store)
}

func TestLogAppendNewestFirst(t *testing.T) {
	log := newTestLog(t)

	require.NoError(t, log.Record("added a survey", "Alice (Received)"))
	require.NoError(t, log.Record("progressed a survey", "Received → Initial Review"))

	entries, err := log.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "progressed a survey", entries[0].Title)
	assert.Equal(t, "added a survey", entries[1].Title)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestLogEmptyList(t *testing.T) {
	log := newTestLog(t)

	entries, err := log.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLogCapRetainsMostRecent(t *testing.T) {
	log := newTestLog(t)

	for i := 0; i < types.ActivityCap+10; i++ {
		require.NoError(t, log.Record("event", fmt.Sprintf("entry %d", i)))
	}

	entries, err := log.List()
	require.NoError(t, err)
	require.Len(t, entries, types.ActivityCap)

	// Newest first: the last appended entry leads, the oldest retained one
	// is 49 appends back.
	assert.Equal(t, fmt.Sprintf("entry %d", types.ActivityCap+9), entries[0].Detail)
	assert.Equal(t, fmt.Sprintf("entry %d", 10), entries[len(entries)-1].Detail)
}

func TestLogInsertionOrderBeatsTimestamps(t *testing.T) {
	log := newTestLog(t)

	// Append an entry stamped in the future, then a normal one. The later
	// append still leads the list.
	require.NoError(t, log.Append(types.ActivityEntry{
		Title:     "clock skew",
		Timestamp: time.Now().Add(time.Hour),
	}))
	require.NoError(t, log.Append(types.ActivityEntry{
		Title:     "appended later",
		Timestamp: time.Now(),
	}))

	entries, err := log.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "appended later", entries[0].Title)
	assert.Equal(t, "clock skew", entries[1].Title)
}
