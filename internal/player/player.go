package player

import (
	"database/sql"
	"fmt"
	"strings"

	"carddeck/internal/game"

	"github.com/google/uuid"
)

// Player is the dealer bot's record for one chat.
type Player struct {
	ChatID   int64
	DeckID   string
	Deck     []game.Card
	Draws    int
	Shuffles int
	Added    int
	BestCard *game.Card
}

type Stats struct {
	ChatID   int64
	Draws    int
	Shuffles int
	BestCard string
}

type Repository interface {
	GetOrCreate(chatID int64) (*Player, error)
	Save(player *Player) error
	GetTopByDraws(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(chatID int64) (*Player, error) {
	player := &Player{ChatID: chatID}

	var deck, best string
	err := r.db.QueryRow(`
		SELECT deck_id, deck, draws, shuffles, added, best_card
		FROM players WHERE chat_id = ?
	`, chatID).Scan(
		&player.DeckID, &deck, &player.Draws,
		&player.Shuffles, &player.Added, &best,
	)

	if err == sql.ErrNoRows {
		_, err = r.db.Exec(`
			INSERT INTO players (chat_id) VALUES (?)
		`, chatID)

		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if deck != "" {
		player.Deck, err = game.ParseCards(strings.Fields(deck))
		if err != nil {
			return nil, fmt.Errorf("failed to decode deck of chat %d: %w", chatID, err)
		}
	}
	if best != "" {
		c, err := game.ParseCard(best)
		if err != nil {
			return nil, fmt.Errorf("failed to decode best card of chat %d: %w", chatID, err)
		}
		player.BestCard = &c
	}

	return player, nil
}

func (r *SQLiteRepository) Save(player *Player) error {
	var best string
	if player.BestCard != nil {
		best = player.BestCard.Code()
	}

	_, err := r.db.Exec(`
		UPDATE players SET
			deck_id = ?, deck = ?, draws = ?, shuffles = ?,
			added = ?, best_card = ?, updated_at = CURRENT_TIMESTAMP
		WHERE chat_id = ?
	`, player.DeckID, game.FormatCodes(player.Deck), player.Draws, player.Shuffles,
		player.Added, best, player.ChatID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetTopByDraws(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT chat_id, draws, shuffles, best_card
		FROM players
		WHERE draws > 0
		ORDER BY draws DESC, chat_id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.ChatID, &s.Draws, &s.Shuffles, &s.BestCard); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// NewDeck records a freshly built deck under a new id.
func (p *Player) NewDeck(d *game.Deck) {
	p.DeckID = uuid.NewString()
	p.Deck = d.Cards()
}

// SyncDeck stores the current order of d.
func (p *Player) SyncDeck(d *game.Deck) {
	p.Deck = d.Cards()
}

func (p *Player) RecordDraw(cards ...game.Card) {
	if len(cards) == 0 {
		return
	}
	p.Draws += len(cards)

	candidates := cards
	if p.BestCard != nil {
		candidates = append([]game.Card{*p.BestCard}, cards...)
	}
	best, _ := game.MaxCard(candidates...)
	p.BestCard = &best
}

func (p *Player) RecordShuffle() {
	p.Shuffles++
}

func (p *Player) RecordAdd() {
	p.Added++
}

// ShortDeckID is the first block of the deck id, for display.
func (p *Player) ShortDeckID() string {
	if i := strings.IndexByte(p.DeckID, '-'); i > 0 {
		return p.DeckID[:i]
	}
	return p.DeckID
}
