package bot

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tvmauto/partsbot/internal/api"
	"github.com/tvmauto/partsbot/internal/dialog"
	"github.com/tvmauto/partsbot/internal/domain/cart"
	"github.com/tvmauto/partsbot/internal/session"
)

const shopName = "T V M Auto Spare"

type Bot struct {
	api      *tgbotapi.BotAPI
	log      *slog.Logger
	client   *api.Client
	sessions *session.Store
	states   *dialog.Repo
	carts    *cart.Registry
	search   *debouncer
	gstRate  float64
	tz       *time.Location
}

func New(botAPI *tgbotapi.BotAPI, log *slog.Logger, client *api.Client,
	sessions *session.Store, states *dialog.Repo,
	gstRate float64, debounce time.Duration, tz *time.Location) *Bot {

	return &Bot{
		api:      botAPI,
		log:      log,
		client:   client,
		sessions: sessions,
		states:   states,
		carts:    cart.NewRegistry(),
		search:   newDebouncer(debounce),
		gstRate:  gstRate,
		tz:       tz,
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				b.onMessage(ctx, upd)
			} else if upd.CallbackQuery != nil {
				b.onCallback(ctx, upd)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string, alert bool) {
	resp := tgbotapi.NewCallback(cb.ID, text)
	resp.ShowAlert = alert
	if _, err := b.api.Request(resp); err != nil {
		b.log.Error("callback answer failed", "err", err)
	}
}

// now is the bot's clock in the configured shop timezone; reports and
// "sales today" bucket by this calendar.
func (b *Bot) now() time.Time {
	return time.Now().In(b.tz)
}

// requireSession loads the chat's session or walks the user to the login
// screen; a nil return means the caller should stop.
func (b *Bot) requireSession(ctx context.Context, chatID int64) *session.Session {
	sess, err := b.sessions.Get(ctx, chatID)
	if err != nil {
		b.log.Error("session load failed", "chat_id", chatID, "err", err)
		b.reply(chatID, "Something went wrong, try again.")
		return nil
	}
	if sess == nil {
		m := tgbotapi.NewMessage(chatID, "You are signed out. Sign in to continue.")
		m.ReplyMarkup = authKeyboard()
		b.send(m)
		return nil
	}
	return sess
}
