// Package bot wires the dialogue engine, intent classifier and activity
// store into a Telegram bot.
package bot

import (
	"context"
	"time"

	"log/slog"

	coreconfig "github.com/hksports/sportsbuddy/core/config"
	"github.com/hksports/sportsbuddy/core/logger"
	tg "github.com/hksports/sportsbuddy/core/telegram"
	tghelpers "github.com/hksports/sportsbuddy/core/telegram/helpers"
	"github.com/hksports/sportsbuddy/core/telegram/router"
	"github.com/hksports/sportsbuddy/internal/activity"
	"github.com/hksports/sportsbuddy/internal/dialog"
	"github.com/hksports/sportsbuddy/internal/intent"
	"github.com/hksports/sportsbuddy/internal/llm"
	"github.com/hksports/sportsbuddy/internal/store"

	tele "gopkg.in/telebot.v4"
)

// App aggregates the bot's services and produces the Telegram run options.
type App struct {
	cfg        *coreconfig.Config
	reg        *tg.Registry
	sessions   *dialog.Manager
	classifier *intent.Classifier
	activities *activity.Service
	backend    store.Backend
}

// New builds the application: selects the activity store backend, constructs
// the model client, and registers all commands, callbacks and fallbacks.
func New(cfg *coreconfig.Config) *App {
	backend := store.Open(cfg)

	a := &App{
		cfg:        cfg,
		reg:        tg.NewRegistry(),
		sessions:   dialog.NewManager(),
		classifier: intent.NewClassifier(llm.NewClient(cfg.ChatGPT)),
		activities: activity.NewService(backend),
		backend:    backend,
	}

	a.registerCommands()
	a.registerCallbacks()
	a.reg.SetTextFallback(a.handleFreeText)

	return a
}

// TelegramRunOptions assembles routes and middlewares for RunTelegram.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	routes := router.CommandRoutes(a.reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.TextRoutes(a, a.reg, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(a.reg, router.CallbackOptions{}))

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    a.reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt tg.Runtime) error {
			logger.TWire.Info("bot ready",
				slog.String("event", "ready"),
				slog.String("backend", a.backend.Name()),
			)
			return nil
		},
		OnStop: func(ctx context.Context, rt tg.Runtime) error {
			return a.backend.Close()
		},
	}, nil
}

// InProgress reports whether the user has an active registration dialogue.
// Together with ManagerHandler it satisfies the text router's FSM interface.
func (a *App) InProgress(userID int64) bool {
	return a.sessions.InProgress(userID)
}

// ManagerHandler feeds a typed message into the user's active dialogue.
func (a *App) ManagerHandler(c tele.Context) error {
	userID := c.Sender().ID
	s, ok := a.sessions.Get(userID)
	if !ok {
		return nil
	}

	before := s.State
	res := dialog.HandleText(s, c.Text(), time.Now())

	ctx := tghelpers.BuildContext(c)
	logger.Dialog.Log(ctx, slog.LevelDebug, "dialogue step",
		slog.String("event", "dialog.step"),
		slog.String("state", string(before)),
		slog.String("next_state", string(s.State)),
	)

	return a.finish(c, userID, res)
}

// finish persists a completed registration, clears finished sessions, and
// delivers the step's replies.
func (a *App) finish(c tele.Context, userID int64, res dialog.Result) error {
	if res.Done {
		a.sessions.Clear(userID)
	}

	if res.Completed != nil {
		saved, err := a.activities.Save(tghelpers.BuildContext(c), *res.Completed)
		if err != nil {
			return c.Edit(dialog.SaveFailedText)
		}
		return c.Edit(dialog.SuccessText(saved))
	}

	return a.deliver(c, res)
}

// deliver sends every reply of a dialogue result, attaching keyboards where
// the machine asked for them.
func (a *App) deliver(c tele.Context, res dialog.Result) error {
	now := time.Now()
	for _, r := range res.Replies {
		opts := &tele.SendOptions{ReplyMarkup: markupFor(r.Keyboard, now)}
		if r.Markdown {
			opts.ParseMode = tele.ModeMarkdown
		}
		var err error
		if r.Edit {
			err = c.Edit(r.Text, opts)
		} else {
			err = tghelpers.SendText(c, r.Text, opts)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
