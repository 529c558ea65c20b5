package bot

import (
	"time"

	"github.com/hksports/sportsbuddy/core/telegram/keyboard"
	"github.com/hksports/sportsbuddy/internal/dialog"

	tele "gopkg.in/telebot.v4"
)

// Callback uniques shared between keyboards and handlers.
const (
	cbSport     = "sport"
	cbDistrict  = "district"
	cbTime      = "time"
	cbConfirm   = "confirm"
	cbClearChat = "clear_chat"
)

func markupFor(kind dialog.Keyboard, now time.Time) *tele.ReplyMarkup {
	switch kind {
	case dialog.KeyboardSports:
		return sportsMarkup()
	case dialog.KeyboardDistricts:
		return districtsMarkup()
	case dialog.KeyboardTime:
		return timeMarkup(now)
	case dialog.KeyboardConfirm:
		return confirmMarkup()
	}
	return nil
}

func sportsMarkup() *tele.ReplyMarkup {
	btns := make([]keyboard.InlineBtn, 0, len(dialog.CommonSports))
	for _, sport := range dialog.CommonSports {
		btns = append(btns, keyboard.InlineBtn{Text: sport, Unique: cbSport, Data: sport})
	}
	markup := keyboard.InlineButtonsNPerRow(btns, 2)
	return keyboard.AppendRow(markup, keyboard.InlineBtn{
		Text: "Other Sport", Unique: cbSport, Data: dialog.OtherChoice,
	})
}

func districtsMarkup() *tele.ReplyMarkup {
	btns := make([]keyboard.InlineBtn, 0, len(dialog.Districts))
	for _, district := range dialog.Districts {
		btns = append(btns, keyboard.InlineBtn{Text: district, Unique: cbDistrict, Data: district})
	}
	markup := keyboard.InlineButtonsNPerRow(btns, 3)
	return keyboard.AppendRow(markup, keyboard.InlineBtn{
		Text: "Other District", Unique: cbDistrict, Data: dialog.OtherChoice,
	})
}

func timeMarkup(now time.Time) *tele.ReplyMarkup {
	slots := dialog.TimeSlots(now)
	btns := make([]keyboard.InlineBtn, 0, len(slots))
	for _, slot := range slots {
		btns = append(btns, keyboard.InlineBtn{Text: slot, Unique: cbTime, Data: slot})
	}
	markup := keyboard.InlineButtonsNPerRow(btns, 3)
	return keyboard.AppendRow(markup, keyboard.InlineBtn{
		Text: "Other Time", Unique: cbTime, Data: dialog.OtherChoice,
	})
}

func confirmMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "✅ Confirm", Unique: cbConfirm, Data: "yes"},
		{Text: "❌ Cancel", Unique: cbConfirm, Data: "no"},
	})
}

func clearChatMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "✅ Yes, clear chat", Unique: cbClearChat, Data: "confirm"},
		{Text: "❌ No, keep history", Unique: cbClearChat, Data: "cancel"},
	})
}
