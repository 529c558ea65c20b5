package bot

import (
	"time"

	"github.com/hksports/sportsbuddy/core/telegram/callbacks"
	tghelpers "github.com/hksports/sportsbuddy/core/telegram/helpers"
	"github.com/hksports/sportsbuddy/internal/dialog"

	tele "gopkg.in/telebot.v4"
)

const staleSessionText = "This registration is no longer active. Start again with /sport_now."

func (a *App) registerCallbacks() {
	_ = a.reg.RegisterCallback(cbSport, a.handleSportChoice)
	_ = a.reg.RegisterCallback(cbDistrict, a.handleDistrictChoice)
	_ = a.reg.RegisterCallback(cbTime, a.handleTimeChoice)
	_ = a.reg.RegisterCallback(cbConfirm, a.handleConfirmChoice)
	_ = a.reg.RegisterCallback(cbClearChat, a.handleClearChatChoice)
}

// session resolves the active dialogue for a callback press; stale buttons
// from a cleared session get a short notice instead.
func (a *App) session(c tele.Context) (*dialog.Session, bool, error) {
	s, ok := a.sessions.Get(c.Sender().ID)
	if !ok {
		return nil, false, c.Edit(staleSessionText)
	}
	return s, true, nil
}

func (a *App) handleSportChoice(c tele.Context) error {
	s, ok, err := a.session(c)
	if !ok {
		return err
	}
	res := dialog.HandleSportChoice(s, callbacks.CallbackPayload(c))
	return a.finish(c, c.Sender().ID, res)
}

func (a *App) handleDistrictChoice(c tele.Context) error {
	s, ok, err := a.session(c)
	if !ok {
		return err
	}
	res := dialog.HandleDistrictChoice(s, callbacks.CallbackPayload(c), time.Now())
	return a.finish(c, c.Sender().ID, res)
}

func (a *App) handleTimeChoice(c tele.Context) error {
	s, ok, err := a.session(c)
	if !ok {
		return err
	}
	res := dialog.HandleTimeChoice(s, callbacks.CallbackPayload(c))
	return a.finish(c, c.Sender().ID, res)
}

func (a *App) handleConfirmChoice(c tele.Context) error {
	s, ok, err := a.session(c)
	if !ok {
		return err
	}
	confirmed := callbacks.CallbackPayload(c) == "yes"
	res := dialog.HandleConfirm(s, confirmed, time.Now())
	return a.finish(c, c.Sender().ID, res)
}

func (a *App) handleClearChatChoice(c tele.Context) error {
	if callbacks.CallbackPayload(c) != "confirm" {
		return c.Edit("Chat history will be kept. Continue our conversation!")
	}

	a.sessions.Clear(c.Sender().ID)
	_ = c.Delete()

	cleared := "🧹 Chat cleared! 🧹\n\n" +
		"I've reset our conversation. Let's start fresh!\n\n" +
		"What would you like to do now?\n" +
		"• Use /sport_now to register a sport activity\n" +
		"• Use /find_sport_buddy to find sports partners\n" +
		"• Just chat with me about your sports interests"
	return tghelpers.SendText(c, cleared)
}
