package snapshot

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	composable "github.com/utdemir/composable-indexes"
)

type record struct {
	Name string
	Age  int
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := "test_snapshot.db"
	defer os.Remove(path)

	store := composable.NewStore[record]()
	id1 := store.Insert(record{"alice", 30})
	id2 := store.Insert(record{"bob", 40})

	b, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, Save(b, store))
	require.NoError(t, b.Close())

	b2, err := Open(path)
	require.NoError(t, err)
	defer b2.Close()

	values, err := Load[record](b2)
	require.NoError(t, err)
	require.Len(t, values, 2)
	require.Equal(t, record{"alice", 30}, values[id1])
	require.Equal(t, record{"bob", 40}, values[id2])
}

func TestSaveOverwritesPreviousContents(t *testing.T) {
	path := "test_snapshot_overwrite.db"
	defer os.Remove(path)

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	first := composable.NewStore[record]()
	first.Insert(record{"alice", 30})
	require.NoError(t, Save(b, first))

	second := composable.NewStore[record]()
	second.Insert(record{"carol", 22})
	require.NoError(t, Save(b, second))

	values, err := Load[record](b)
	require.NoError(t, err)
	require.Len(t, values, 1)

	for _, v := range values {
		require.Equal(t, record{"carol", 22}, v)
	}
}
