package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tvmauto/partsbot/internal/dialog"
)

func (b *Bot) startLogin(ctx context.Context, chatID int64) {
	_ = b.states.Set(ctx, chatID, dialog.StateAuthEmail, dialog.Payload{})
	m := tgbotapi.NewMessage(chatID, "Email:")
	m.ReplyMarkup = cancelKeyboard()
	b.send(m)
}

func (b *Bot) startRegister(ctx context.Context, chatID int64) {
	_ = b.states.Set(ctx, chatID, dialog.StateRegName, dialog.Payload{})
	m := tgbotapi.NewMessage(chatID, "Your name:")
	m.ReplyMarkup = cancelKeyboard()
	b.send(m)
}

func (b *Bot) handleAuthText(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	switch st.State {
	case dialog.StateAuthEmail:
		if !strings.Contains(text, "@") {
			b.reply(chatID, "That does not look like an email. Try again:")
			return
		}
		_ = b.states.Set(ctx, chatID, dialog.StateAuthPassword, dialog.Payload{"email": text})
		b.reply(chatID, "Password:")

	case dialog.StateAuthPassword:
		email, _ := dialog.GetString(st.Payload, "email")
		sess, err := b.sessions.Login(ctx, chatID, email, text)
		if err != nil {
			// surfaced next to the form; the flow restarts from email
			b.reply(chatID, "Sign-in failed: "+err.Error())
			b.startLogin(ctx, chatID)
			return
		}
		_ = b.states.Set(ctx, chatID, dialog.StateIdle, dialog.Payload{})
		m := tgbotapi.NewMessage(chatID, "Signed in as "+sess.Name+".")
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)

	case dialog.StateRegName:
		if text == "" {
			b.reply(chatID, "Name cannot be blank. Try again:")
			return
		}
		_ = b.states.Set(ctx, chatID, dialog.StateRegEmail, dialog.Payload{"name": text})
		b.reply(chatID, "Email:")

	case dialog.StateRegEmail:
		if !strings.Contains(text, "@") {
			b.reply(chatID, "That does not look like an email. Try again:")
			return
		}
		st.Payload["email"] = text
		_ = b.states.Set(ctx, chatID, dialog.StateRegPassword, st.Payload)
		b.reply(chatID, "Password:")

	case dialog.StateRegPassword:
		name, _ := dialog.GetString(st.Payload, "name")
		email, _ := dialog.GetString(st.Payload, "email")
		sess, err := b.sessions.Register(ctx, chatID, name, email, text)
		if err != nil {
			b.reply(chatID, "Registration failed: "+err.Error())
			b.startRegister(ctx, chatID)
			return
		}
		_ = b.states.Set(ctx, chatID, dialog.StateIdle, dialog.Payload{})
		m := tgbotapi.NewMessage(chatID, "Account created. Signed in as "+sess.Name+".")
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)
	}
}
