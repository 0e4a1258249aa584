package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"altered-knowledge/core/reconcile"
	"altered-knowledge/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func listing(keys ...string) <-chan minio.ObjectInfo {
	return mocks.Objects(keys...)
}

func TestLoader_BuildIndex(t *testing.T) {
	defer goleak.VerifyNone(t)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "kb", mock.Anything).
		Return(listing("COLLECTION/a.json", "COLLECTION/b.json", "COLLECTION/c.json", "COLLECTION/gone.json"))
	client.On("GetObject", mock.Anything, "kb", "COLLECTION/a.json", mock.Anything).
		Return(mocks.Body(`[{"card_id":"A","count":2},{"card_id":"B","count":1,"foil":true}]`), nil)
	client.On("GetObject", mock.Anything, "kb", "COLLECTION/b.json", mock.Anything).
		Return(mocks.Body(`[{"card_id":"A","count":1},{"card_id":"C","count":0}]`), nil)
	client.On("GetObject", mock.Anything, "kb", "COLLECTION/c.json", mock.Anything).
		Return(mocks.Body(`not json`), nil)
	client.On("GetObject", mock.Anything, "kb", "COLLECTION/gone.json", mock.Anything).
		Return(nil, mocks.NoSuchKey("COLLECTION/gone.json"))

	loader := &reconcile.Loader{Client: client, Bucket: "kb", Concurrency: 2, Logger: zap.NewNop()}
	idx, notes, err := loader.BuildIndex(context.Background(), "COLLECTION/")
	require.NoError(t, err)

	assert.Equal(t, reconcile.OwnershipIndex{
		"A": {CardID: "A", Count: 3},
		"B": {CardID: "B", Count: 1, FoilCount: 1},
	}, idx)

	kinds := map[reconcile.AnnotationKind]int{}
	for _, n := range notes {
		kinds[n.Kind]++
	}
	assert.Equal(t, map[reconcile.AnnotationKind]int{
		reconcile.KindMissingShardSource: 1,
		reconcile.KindMalformedRecord:    2,
	}, kinds)
}

func TestLoader_MissingSource(t *testing.T) {
	t.Run("Empty Prefix", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "kb", mock.Anything).Return(listing())

		loader := &reconcile.Loader{Client: client, Bucket: "kb"}
		idx, notes, err := loader.BuildIndex(context.Background(), "COLLECTION/")
		require.NoError(t, err)
		assert.Empty(t, idx)
		require.Len(t, notes, 1)
		assert.ErrorIs(t, notes[0].Err(), reconcile.ErrMissingShardSource)
	})

	t.Run("Listing Error", func(t *testing.T) {
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: errors.New("bucket unavailable")}
		close(ch)

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "kb", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		loader := &reconcile.Loader{Client: client, Bucket: "kb"}
		cards, notes, err := loader.LoadUniques(context.Background(), "UNIQUES/cards/")
		require.NoError(t, err)
		assert.Empty(t, cards)
		require.Len(t, notes, 1)
		assert.Equal(t, reconcile.KindMissingShardSource, notes[0].Kind)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "kb", mock.Anything).Return(listing("COLLECTION/a.json"))
		client.On("GetObject", mock.Anything, "kb", "COLLECTION/a.json", mock.Anything).
			Return(nil, context.Canceled)

		loader := &reconcile.Loader{Client: client, Bucket: "kb"}
		_, _, err := loader.BuildIndex(ctx, "COLLECTION/")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoader_LoadUniques(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "kb", mock.Anything).Return(listing("UNIQUES/cards/u.json"))
	client.On("GetObject", mock.Anything, "kb", "UNIQUES/cards/u.json", mock.Anything).
		Return(mocks.Body(`[{"card_id":"U1","owner":"me"},{"card_id":"U2","collection":true}]`), nil)

	loader := &reconcile.Loader{Client: client, Bucket: "kb", Logger: zap.NewNop()}
	cards, notes, err := loader.LoadUniques(context.Background(), "UNIQUES/cards/")
	require.NoError(t, err)
	assert.Empty(t, notes)

	reg := reconcile.NewRegistry("me", cards)
	assert.Equal(t, []string{"U1", "U2"}, reg.OwnedIDs())
}
