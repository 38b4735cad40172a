// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeStorage is an in-memory Storage with fault injection
type fakeStorage struct {
	data     map[string][]byte
	readErr  error
	writeErr error
	writes   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: map[string][]byte{}}
}

func (f *fakeStorage) Read(_ context.Context, key string) ([]byte, bool, error) {
	if f.readErr != nil {
		return nil, false, f.readErr
	}
	value, ok := f.data[key]
	return value, ok, nil
}

func (f *fakeStorage) Write(_ context.Context, key string, value []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes++
	f.data[key] = value
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testProduct() ProductSnapshot {
	return ProductSnapshot{
		ID:      uint(gofakeit.Number(1, 10000)),
		Slug:    gofakeit.Word(),
		Name:    gofakeit.ProductName(),
		Price:   int64(gofakeit.Number(500, 20000)),
		InStock: true,
	}
}

func TestStore_GetEmptySession(t *testing.T) {
	store := NewStore(newFakeStorage(), testLogger())

	result, err := store.Get(context.Background(), "session-1")
	require.NoError(t, err)

	assert.Equal(t, "session-1", result.SessionID)
	assert.Empty(t, result.Lines)
	assert.Equal(t, int64(0), result.Totals.Total)
}

func TestStore_AddPersistsAndRestores(t *testing.T) {
	storage := newFakeStorage()
	store := NewStore(storage, testLogger())
	ctx := context.Background()
	product := testProduct()

	added, err := store.AddItem(ctx, "session-1", product, 2, "M", "Black")
	require.NoError(t, err)
	require.Len(t, added.Lines, 1)
	assert.Equal(t, 2*product.EffectivePrice(), added.Totals.Total)

	// A fresh store over the same storage restores the identical lines
	restored, err := NewStore(storage, testLogger()).Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(added.Lines, restored.Lines))
	assert.Equal(t, added.Totals, restored.Totals)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore(newFakeStorage(), testLogger())
	ctx := context.Background()

	_, err := store.AddItem(ctx, "session-a", testProduct(), 1, "M", "Black")
	require.NoError(t, err)

	other, err := store.Get(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
}

func TestStore_EveryMutationWrites(t *testing.T) {
	storage := newFakeStorage()
	store := NewStore(storage, testLogger())
	ctx := context.Background()
	product := testProduct()

	_, err := store.AddItem(ctx, "session-1", product, 1, "M", "Black")
	require.NoError(t, err)
	_, err = store.UpdateQuantity(ctx, "session-1", product.ID, "M", "Black", 3)
	require.NoError(t, err)
	_, err = store.RemoveItem(ctx, "session-1", product.ID, "M", "Black")
	require.NoError(t, err)
	_, err = store.Clear(ctx, "session-1")
	require.NoError(t, err)

	assert.Equal(t, 4, storage.writes)
}

func TestStore_GetDoesNotWrite(t *testing.T) {
	storage := newFakeStorage()
	store := NewStore(storage, testLogger())

	_, err := store.Get(context.Background(), "session-1")
	require.NoError(t, err)

	assert.Zero(t, storage.writes)
}

func TestStore_CorruptStateFallsBackToEmptyCart(t *testing.T) {
	storage := newFakeStorage()
	storage.data["cart:session:session-1"] = []byte("{not json")
	store := NewStore(storage, testLogger())

	result, err := store.Get(context.Background(), "session-1")
	require.NoError(t, err)

	assert.Empty(t, result.Lines)
	assert.Equal(t, int64(0), result.Totals.Total)
}

func TestStore_ReadFailureFallsBackToEmptyCart(t *testing.T) {
	storage := newFakeStorage()
	storage.readErr = errors.New("connection refused")
	store := NewStore(storage, testLogger())

	result, err := store.Get(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Empty(t, result.Lines)
}

func TestStore_WriteFailureIsAbsorbed(t *testing.T) {
	storage := newFakeStorage()
	storage.writeErr = errors.New("connection refused")
	store := NewStore(storage, testLogger())
	product := testProduct()

	// The mutation still succeeds and the returned cart reflects it
	result, err := store.AddItem(context.Background(), "session-1", product, 2, "M", "Black")
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 2*product.EffectivePrice(), result.Totals.Total)
}

func TestStore_UpdateQuantityZeroRemovesLine(t *testing.T) {
	store := NewStore(newFakeStorage(), testLogger())
	ctx := context.Background()
	product := testProduct()

	_, err := store.AddItem(ctx, "session-1", product, 3, "M", "Black")
	require.NoError(t, err)

	result, err := store.UpdateQuantity(ctx, "session-1", product.ID, "M", "Black", 0)
	require.NoError(t, err)
	assert.Empty(t, result.Lines)
}

func TestStore_ItemCount(t *testing.T) {
	store := NewStore(newFakeStorage(), testLogger())
	ctx := context.Background()

	_, err := store.AddItem(ctx, "session-1", testProduct(), 2, "M", "Black")
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "session-1", testProduct(), 3, "L", "White")
	require.NoError(t, err)

	count, err := store.ItemCount(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestStore_EmptySessionIDRejected(t *testing.T) {
	store := NewStore(newFakeStorage(), testLogger())
	ctx := context.Background()

	_, err := store.Get(ctx, "")
	assert.Error(t, err)

	_, err = store.AddItem(ctx, "", testProduct(), 1, "M", "Black")
	assert.Error(t, err)

	_, err = store.Clear(ctx, "")
	assert.Error(t, err)
}

func TestStore_PersistedPayloadIsLineListOnly(t *testing.T) {
	storage := newFakeStorage()
	store := NewStore(storage, testLogger())
	product := testProduct()

	_, err := store.AddItem(context.Background(), "session-1", product, 1, "M", "Black")
	require.NoError(t, err)

	var lines []Line
	require.NoError(t, json.Unmarshal(storage.data["cart:session:session-1"], &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, product.ID, lines[0].Product.ID)
}
