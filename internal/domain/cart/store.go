// internal/domain/cart/store.go
package cart

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is the single source of truth for shopping carts. Every mutation
// runs the pure reducer and then persists the full line list under the
// session's key. Totals are always recomputed from the restored lines,
// so totals and lines cannot disagree after a restore.
type Store struct {
	storage Storage
	logger  *logrus.Logger
}

// NewStore creates a cart store on top of durable key-value storage
func NewStore(storage Storage, logger *logrus.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger,
	}
}

// AddItem adds quantity of (product, size, color) to the session's cart.
// A line with the same identity accumulates in place; otherwise a new
// line is appended at the end.
func (s *Store) AddItem(ctx context.Context, sessionID string, product ProductSnapshot, quantity int, size, color string) (*Cart, error) {
	return s.mutate(ctx, sessionID, AddItem{
		Product:  product,
		Quantity: quantity,
		Size:     size,
		Color:    color,
	})
}

// RemoveItem deletes the line matching the triple. Removing a line that
// does not exist is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, sessionID string, productID uint, size, color string) (*Cart, error) {
	return s.mutate(ctx, sessionID, RemoveItem{
		ProductID: productID,
		Size:      size,
		Color:     color,
	})
}

// UpdateQuantity sets the matching line's quantity to an absolute value.
// Zero or negative removes the line. No-op when no line matches.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, productID uint, size, color string, quantity int) (*Cart, error) {
	return s.mutate(ctx, sessionID, UpdateQuantity{
		ProductID: productID,
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	})
}

// Clear empties the session's cart and persists the empty state
func (s *Store) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	return s.mutate(ctx, sessionID, Clear{})
}

// Get restores the session's cart from storage and derives its totals.
// Pure read: nothing is written back.
func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}
	state := s.load(ctx, sessionID)
	return s.view(sessionID, state), nil
}

// ItemCount returns the sum of quantities across the session's lines
func (s *Store) ItemCount(ctx context.Context, sessionID string) (int, error) {
	if sessionID == "" {
		return 0, fmt.Errorf("session ID required")
	}
	return s.load(ctx, sessionID).ItemCount(), nil
}

// mutate runs the load -> apply -> persist cycle shared by all mutations
func (s *Store) mutate(ctx context.Context, sessionID string, action Action) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	state := Apply(s.load(ctx, sessionID), action)
	s.persist(ctx, sessionID, state)

	return s.view(sessionID, state), nil
}

// load restores the line sequence for a session. An absent key yields
// the empty cart. Corrupt or unreadable state also falls back to the
// empty cart: there is nothing meaningful to retry, and the store must
// not fail the request over it.
func (s *Store) load(ctx context.Context, sessionID string) State {
	value, found, err := s.storage.Read(ctx, cartKey(sessionID))
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to read cart state, starting from empty cart")
		return State{Lines: []Line{}}
	}
	if !found {
		return State{Lines: []Line{}}
	}

	var lines []Line
	if err := json.Unmarshal(value, &lines); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Corrupt cart state in storage, falling back to empty cart")
		return State{Lines: []Line{}}
	}

	return Apply(State{}, Load{Lines: lines})
}

// persist writes the full line list for a session, overwriting any prior
// value. Write failures are absorbed: the in-memory state stays
// authoritative for the current request and the failure is only logged.
func (s *Store) persist(ctx context.Context, sessionID string, state State) {
	value, err := json.Marshal(state.Lines)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to serialize cart state")
		return
	}

	if err := s.storage.Write(ctx, cartKey(sessionID), value); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to persist cart state")
	}
}

func (s *Store) view(sessionID string, state State) *Cart {
	return &Cart{
		SessionID: sessionID,
		Lines:     state.Lines,
		Totals:    state.ComputeTotals(),
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
