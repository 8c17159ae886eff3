package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/gowal"

	"github.com/clustermesh/quorumcall/core/dto"
)

func newWal(t *testing.T, dir string) *gowal.Wal {
	wal, err := gowal.NewWAL(gowal.Config{
		Dir:              dir,
		Prefix:           "rounds_",
		SegmentThreshold: 100,
		MaxSegments:      10,
		IsInSyncDiskMode: true,
	})
	require.NoError(t, err)

	return wal
}

func aggregate(instance string, reqs float64) dto.AggregateSnapshot {
	return dto.AggregateSnapshot{
		Instances:   []string{instance},
		CollectedAt: time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
		Counters:    map[string]float64{"reqs": reqs},
		Gauges:      map[string]float64{},
	}
}

func TestRecordAndLatest(t *testing.T) {
	wal := newWal(t, t.TempDir())
	defer wal.Close()

	a, err := New(wal, t.TempDir())
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Latest()
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, a.Record(aggregate("worker-1", 1)))
	require.NoError(t, a.Record(aggregate("worker-1", 2)))

	latest, err := a.Latest()
	require.NoError(t, err)
	require.Equal(t, float64(2), latest.Counters["reqs"])
	require.Equal(t, 2, a.Rounds())
}

func TestRecoversRoundsFromJournal(t *testing.T) {
	walDir, dbDir := t.TempDir(), t.TempDir()

	wal := newWal(t, walDir)
	a, err := New(wal, dbDir)
	require.NoError(t, err)

	require.NoError(t, a.Record(aggregate("worker-1", 1)))
	require.NoError(t, a.Record(aggregate("worker-2", 7)))

	require.NoError(t, a.Close())
	require.NoError(t, wal.Close())

	// fresh badger directory: the materialized state must be rebuilt from
	// the journal alone
	wal = newWal(t, walDir)
	defer wal.Close()

	reopened, err := New(wal, t.TempDir())
	require.NoError(t, err)
	defer reopened.Close()

	latest, err := reopened.Latest()
	require.NoError(t, err)
	require.Equal(t, []string{"worker-2"}, latest.Instances)
	require.Equal(t, float64(7), latest.Counters["reqs"])
	require.Equal(t, 2, reopened.Rounds())

	// indexes keep increasing after recovery instead of overwriting rounds
	require.NoError(t, reopened.Record(aggregate("worker-3", 9)))
	require.Equal(t, 3, reopened.Rounds())
}
