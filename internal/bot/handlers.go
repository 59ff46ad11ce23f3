package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"carddeck/internal/config"
	"carddeck/internal/game"
	"carddeck/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	maxListed = 100
	peekTop   = 3
)

var errBadStatsArg = errors.New("bad stats argument")

type Handler struct {
	bot     Sender
	cfg     *config.Config
	players player.Repository
	decks   *game.Manager
}

type reply struct {
	text     string
	keyboard *tgbotapi.InlineKeyboardMarkup
}

func NewHandler(bot Sender, cfg *config.Config, repo player.Repository) *Handler {
	return &Handler{
		bot:     bot,
		cfg:     cfg,
		players: repo,
		decks:   game.NewManager(),
	}
}

// ============== ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendReply(chatID int64, r reply) {
	if r.keyboard != nil {
		h.sendWithKeyboard(chatID, r.text, *r.keyboard)
		return
	}
	h.send(chatID, r.text)
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

func (h *Handler) rng() game.Shuffler {
	if h.cfg.HasSeed {
		return game.NewRand(h.cfg.Seed)
	}
	return nil
}

// restoreDeck rebuilds the chat's saved deck, or deals a fresh one for a new chat.
func (h *Handler) restoreDeck(p *player.Player) *game.Deck {
	if p.DeckID != "" {
		return game.NewDeckFromCards(h.rng(), p.Deck)
	}
	d := game.NewDeck(h.rng(), h.cfg.ShuffleDeck)
	p.NewDeck(d)
	return d
}

// withDeck runs fn on the chat's deck and saves the chat's record afterwards.
func (h *Handler) withDeck(chatID int64, fn func(p *player.Player, d *game.Deck) reply) (reply, error) {
	var r reply
	err := h.decks.Do(chatID, func(d *game.Deck) (*game.Deck, error) {
		p, err := h.players.GetOrCreate(chatID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			d = h.restoreDeck(p)
		}

		r = fn(p, d)

		p.SyncDeck(d)
		if err := h.players.Save(p); err != nil {
			return nil, err
		}
		return d, nil
	})
	return r, err
}

func (h *Handler) run(chatID int64, fn func(p *player.Player, d *game.Deck) reply) {
	r, err := h.withDeck(chatID, fn)
	if err != nil {
		log.Printf("Chat %d: %v", chatID, err)
		h.send(chatID, "❌ Error. Try again later.")
		return
	}
	h.sendReply(chatID, r)
}

func withKeyboard(text string, kb tgbotapi.InlineKeyboardMarkup) reply {
	return reply{text: text, keyboard: &kb}
}

// ============== ФОРМАТИРОВАНИЕ ==============

func formatCards(cards []game.Card) string {
	var sb strings.Builder
	for i, c := range cards {
		if i == maxListed {
			sb.WriteString(fmt.Sprintf("…and %d more\n", len(cards)-maxListed))
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i, c))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// parseStatsArgs splits "/stats" arguments into max=N / min=N options and card codes.
func parseStatsArgs(args []string) (game.StatsOptions, []string, error) {
	var opts game.StatsOptions
	var codes []string

	for _, arg := range args {
		key, value, ok := strings.Cut(strings.ToLower(arg), "=")
		if !ok {
			codes = append(codes, arg)
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return opts, nil, fmt.Errorf("%w: %q", errBadStatsArg, arg)
		}
		switch key {
		case "max":
			opts.Max = n
		case "min":
			opts.Min = n
		default:
			return opts, nil, fmt.Errorf("%w: %q", errBadStatsArg, arg)
		}
	}

	return opts, codes, nil
}

// formatStats splits result back into its greatest and least parts; total is
// the number of cards the statistics ran over.
func formatStats(opts game.StatsOptions, total int, result []game.Card) string {
	maxN := min(max(opts.Max, 0), total)
	var sb strings.Builder
	if opts.Max > 0 {
		sb.WriteString("⬆️ Greatest:\n")
		for _, c := range result[:maxN] {
			sb.WriteString("  " + c.String() + "\n")
		}
	}
	if opts.Min > 0 {
		sb.WriteString("⬇️ Least:\n")
		for _, c := range result[maxN:] {
			sb.WriteString("  " + c.String() + "\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// ============== ОБРАБОТЧИКИ КОМАНД ==============

func (h *Handler) HandleStart(chatID int64) {
	h.run(chatID, func(p *player.Player, d *game.Deck) reply {
		return withKeyboard(fmt.Sprintf(
			"🃏 Welcome to the dealer!\n\n"+
				"Deck %s holds %d cards.\n\n"+
				"/help — list of commands",
			p.ShortDeckID(), d.Len()), DeckKeyboard())
	})
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Commands:\n\n"+
			"/new [noshuffle] — fresh 52-card deck\n"+
			"/shuffle — shuffle the deck\n"+
			"/draw [n] — draw from the top\n"+
			"/peek [i] — look at the top cards, or at position i\n"+
			"/size — cards left\n"+
			"/cards — list the deck\n"+
			"/add <card> — put a card at the bottom, e.g. /add 10H\n"+
			"/max <cards…> — greatest card, e.g. /max 2H AS\n"+
			"/stats max=N min=N [cards…] — greatest and least cards\n"+
			"/top — chats with the most draws\n\n"+
			"Cards rank 2 … 10, J, Q, K, A; ties break ♣ < ♦ < ♥ < ♠")
}

func (h *Handler) HandleNew(chatID int64, args []string) {
	shuffle := h.cfg.ShuffleDeck
	if len(args) > 0 && strings.EqualFold(args[0], "noshuffle") {
		shuffle = false
	}

	var text string
	err := h.decks.Do(chatID, func(*game.Deck) (*game.Deck, error) {
		p, err := h.players.GetOrCreate(chatID)
		if err != nil {
			return nil, err
		}

		d := game.NewDeck(h.rng(), shuffle)
		p.NewDeck(d)
		if err := h.players.Save(p); err != nil {
			return nil, err
		}

		order := "shuffled"
		if !shuffle {
			order = "in order"
		}
		text = fmt.Sprintf("🆕 New deck %s: %d cards, %s", p.ShortDeckID(), d.Len(), order)
		return d, nil
	})
	if err != nil {
		log.Printf("Chat %d: %v", chatID, err)
		h.send(chatID, "❌ Error. Try again later.")
		return
	}

	h.sendWithKeyboard(chatID, text, DeckKeyboard())
}

func (h *Handler) HandleShuffle(chatID int64) {
	h.run(chatID, func(p *player.Player, d *game.Deck) reply {
		d.Shuffle()
		p.RecordShuffle()
		return withKeyboard(fmt.Sprintf("🔀 Shuffled %d cards", d.Len()), DeckKeyboard())
	})
}

func (h *Handler) HandleDraw(chatID int64, args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			h.send(chatID, "❌ Bad count. Example: /draw 3")
			return
		}
		n = v
	}

	h.run(chatID, func(p *player.Player, d *game.Deck) reply {
		if n == 1 {
			c, ok := d.Draw()
			if !ok {
				return withKeyboard("📭 The deck is empty", EmptyDeckKeyboard())
			}
			p.RecordDraw(c)
			return withKeyboard(fmt.Sprintf("🃏 %s\n📏 Left: %d", c, d.Len()), DeckKeyboard())
		}

		drawn := d.DrawN(n)
		if len(drawn) == 0 {
			return withKeyboard("📭 The deck is empty", EmptyDeckKeyboard())
		}
		p.RecordDraw(drawn...)
		return withKeyboard(fmt.Sprintf("🃏 Drew %d:\n%s\n📏 Left: %d",
			len(drawn), formatCards(drawn), d.Len()), DeckKeyboard())
	})
}

func (h *Handler) HandlePeek(chatID int64, args []string) {
	if len(args) == 0 {
		h.run(chatID, func(p *player.Player, d *game.Deck) reply {
			top := d.Peek(peekTop)
			if len(top) == 0 {
				return withKeyboard("📭 The deck is empty", EmptyDeckKeyboard())
			}
			return reply{text: fmt.Sprintf("👀 Top %d:\n%s", len(top), formatCards(top))}
		})
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		h.send(chatID, "❌ Bad position. Example: /peek 0")
		return
	}

	h.run(chatID, func(p *player.Player, d *game.Deck) reply {
		c, err := d.At(i)
		if err != nil {
			return reply{text: fmt.Sprintf("❌ Position %d is out of range (deck has %d cards)", i, d.Len())}
		}
		return reply{text: fmt.Sprintf("👀 #%d: %s", i, c)}
	})
}

func (h *Handler) HandleSize(chatID int64) {
	h.run(chatID, func(p *player.Player, d *game.Deck) reply {
		return reply{text: fmt.Sprintf("📏 %d cards in deck %s", d.Len(), p.ShortDeckID())}
	})
}

func (h *Handler) HandleCards(chatID int64) {
	h.run(chatID, func(p *player.Player, d *game.Deck) reply {
		if d.Len() == 0 {
			return withKeyboard("📭 The deck is empty", EmptyDeckKeyboard())
		}
		return reply{text: fmt.Sprintf("🗂 Deck %s, top first:\n%s", p.ShortDeckID(), formatCards(d.Cards()))}
	})
}

func (h *Handler) HandleAdd(chatID int64, args []string) {
	if len(args) == 0 {
		h.send(chatID, "❌ Give a card. Example: /add 10H")
		return
	}
	c, err := game.ParseCard(args[0])
	if err != nil {
		h.send(chatID, fmt.Sprintf("❌ Unknown card %q. Example: /add 10H", args[0]))
		return
	}

	h.run(chatID, func(p *player.Player, d *game.Deck) reply {
		if err := d.AddCard(c); err != nil {
			return reply{text: fmt.Sprintf("❌ Cannot add %q", args[0])}
		}
		p.RecordAdd()
		return reply{text: fmt.Sprintf("➕ %s is at the bottom (%d cards)", c, d.Len())}
	})
}

func (h *Handler) HandleMax(chatID int64, args []string) {
	cards, err := game.ParseCards(args)
	if err != nil {
		h.send(chatID, fmt.Sprintf("❌ %v", err))
		return
	}

	best, err := game.MaxCard(cards...)
	if err != nil {
		h.send(chatID, "❌ Give some cards. Example: /max 2H AS")
		return
	}
	h.send(chatID, fmt.Sprintf("🏆 %s", best))
}

func (h *Handler) HandleStats(chatID int64, args []string) {
	opts, codes, err := parseStatsArgs(args)
	if err != nil {
		h.send(chatID, fmt.Sprintf("❌ %v. Example: /stats max=2 min=1", err))
		return
	}
	if opts.Max == 0 && opts.Min == 0 {
		h.send(chatID, "❌ Ask for max=N and/or min=N. Example: /stats max=2 min=1")
		return
	}

	if len(codes) > 0 {
		cards, err := game.ParseCards(codes)
		if err != nil {
			h.send(chatID, fmt.Sprintf("❌ %v", err))
			return
		}
		h.send(chatID, formatStats(opts, len(cards), game.CardsStats(cards, opts)))
		return
	}

	h.run(chatID, func(p *player.Player, d *game.Deck) reply {
		if d.Len() == 0 {
			return withKeyboard("📭 The deck is empty", EmptyDeckKeyboard())
		}
		cards := d.Cards()
		return reply{text: formatStats(opts, len(cards), game.CardsStats(cards, opts))}
	})
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.players.GetTopByDraws(h.cfg.TopLimit)
	if err != nil {
		log.Printf("Failed to load top: %v", err)
		h.send(chatID, "❌ Error")
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 Nobody has drawn a card yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Most draws:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		best := "—"
		if c, err := game.ParseCard(s.BestCard); err == nil {
			best = c.String()
		}
		sb.WriteString(fmt.Sprintf("%s %d draws | %d shuffles | best: %s\n",
			medal, s.Draws, s.Shuffles, best))
	}

	h.send(chatID, sb.String())
}

// ============== ОБРАБОТЧИКИ CALLBACK ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackDraw:
		h.HandleDraw(chatID, nil)
	case CallbackShuffle:
		h.HandleShuffle(chatID)
	case CallbackSize:
		h.HandleSize(chatID)
	case CallbackNewDeck:
		h.HandleNew(chatID, nil)
	}

	h.answerCallback(callback.ID, "")
}

// ============== ОБРАБОТЧИК СООБЩЕНИЙ ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	// "/draw@DealerBot 2" in group chats
	cmd, _, _ := strings.Cut(strings.ToLower(parts[0]), "@")
	args := parts[1:]

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/new":
		h.HandleNew(chatID, args)
	case "/shuffle":
		h.HandleShuffle(chatID)
	case "/draw":
		h.HandleDraw(chatID, args)
	case "/peek":
		h.HandlePeek(chatID, args)
	case "/size":
		h.HandleSize(chatID)
	case "/cards":
		h.HandleCards(chatID)
	case "/add":
		h.HandleAdd(chatID, args)
	case "/max":
		h.HandleMax(chatID, args)
	case "/stats":
		h.HandleStats(chatID, args)
	case "/top":
		h.HandleTop(chatID)
	}
}
