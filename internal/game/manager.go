package game

import "sync"

// Manager keeps one deck per chat and serializes every access to them.
type Manager struct {
	decks map[int64]*Deck
	mu    sync.Mutex
}

func NewManager() *Manager {
	return &Manager{
		decks: make(map[int64]*Deck),
	}
}

// Do runs fn on the chat's deck, nil when the chat has none, while holding
// the manager lock. A non-nil deck returned by fn becomes the chat's deck.
// When fn fails the chat's deck is dropped, since fn may have changed it.
func (m *Manager) Do(chatID int64, fn func(d *Deck) (*Deck, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := fn(m.decks[chatID])
	if err != nil {
		delete(m.decks, chatID)
		return err
	}
	if next != nil {
		m.decks[chatID] = next
	}
	return nil
}
