package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CallbackDraw    = "draw"
	CallbackShuffle = "shuffle"
	CallbackSize    = "size"
	CallbackNewDeck = "new_deck"
)

func DeckKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🃏 Draw", CallbackDraw),
			tgbotapi.NewInlineKeyboardButtonData("🔀 Shuffle", CallbackShuffle),
			tgbotapi.NewInlineKeyboardButtonData("📏 Size", CallbackSize),
		),
	)
}

func EmptyDeckKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🆕 New deck", CallbackNewDeck),
		),
	)
}
