package bot

import (
	"fmt"

	"github.com/hksports/sportsbuddy/core/telegram/commands"
	tghelpers "github.com/hksports/sportsbuddy/core/telegram/helpers"
	"github.com/hksports/sportsbuddy/internal/dialog"

	tele "gopkg.in/telebot.v4"
)

func (a *App) registerCommands() {
	a.reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Start the bot",
	})
	a.reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "Show available commands",
	})
	a.reg.RegisterCommand("/sport_now", commands.Command{
		Handler:     a.handleSportNow,
		Description: "Register that you're playing a sport now",
	})
	a.reg.RegisterCommand("/find_sport_buddy", commands.Command{
		Handler:     a.handleFindSportBuddy,
		Description: "Find people to play sports with",
		Aliases:     []string{"find_buddy"},
	})
	a.reg.RegisterCommand("/stats", commands.Command{
		Handler:     a.handleStats,
		Description: "View activity statistics",
	})
	a.reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancel,
		Description: "Cancel the current registration",
	})
	a.reg.RegisterCommand("/clear", commands.Command{
		Handler:     a.handleClear,
		Description: "Clear the chat history",
	})
}

func firstName(c tele.Context) string {
	if user := c.Sender(); user != nil && user.FirstName != "" {
		return user.FirstName
	}
	return "there"
}

func (a *App) handleStart(c tele.Context) error {
	name := firstName(c)
	welcome := fmt.Sprintf(
		"Hey %s! 👋 Great to meet you!\n\n"+
			"I'm your Sports Buddy, here to help you connect with other sports enthusiasts. "+
			"So tell me, what brings you here today?\n\n"+
			"Are you looking to play a sport right now and want to let others know? Or maybe "+
			"you're trying to find some friends to join you for a game?\n\n"+
			"You can just chat with me naturally or use commands like /sport_now or /find_sport_buddy to get started!",
		name)
	if err := tghelpers.SendText(c, welcome); err != nil {
		return err
	}
	return tghelpers.SendText(c, "So, what's your sports plan for today? Ready to play or looking for teammates?")
}

func (a *App) handleHelp(c tele.Context) error {
	help := "🏆 Sports Buddy Bot Help 🏆\n\n" +
		"Available Commands:\n" +
		"/start - Start the bot\n" +
		"/help - Show this help message\n" +
		"/sport_now - Register that you're playing a sport now\n" +
		"/find_sport_buddy - Find people to play sports with\n" +
		"/stats - View activity statistics\n" +
		"/cancel - Cancel the current registration\n" +
		"/clear - Clear the chat history\n\n" +
		"You can also just chat with me naturally about your sports plans!"
	return tghelpers.SendText(c, help)
}

func (a *App) handleSportNow(c tele.Context) error {
	_, res := a.sessions.Start(c.Sender().ID, firstName(c), dialog.Prefill{})
	return a.deliver(c, res)
}

func (a *App) handleFindSportBuddy(c tele.Context) error {
	results := a.activities.FindToday(tghelpers.BuildContext(c), "", "")
	return tghelpers.SendText(c, renderTodayList(results))
}

func (a *App) handleStats(c tele.Context) error {
	stats := a.activities.ActivityStats(tghelpers.BuildContext(c))
	return tghelpers.SendMD(c, renderStats(stats))
}

func (a *App) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	if !a.sessions.InProgress(userID) {
		return tghelpers.SendText(c, "There's nothing to cancel right now.")
	}
	a.sessions.Clear(userID)
	return tghelpers.SendText(c, "Registration cancelled. Feel free to try again when you're ready!")
}

func (a *App) handleClear(c tele.Context) error {
	text := fmt.Sprintf("Are you sure you want to clear our chat history, %s?", firstName(c))
	return tghelpers.SendText(c, text, &tele.SendOptions{ReplyMarkup: clearChatMarkup()})
}
