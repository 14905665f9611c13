package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tvmauto/partsbot/internal/api"
	"github.com/tvmauto/partsbot/internal/dialog"
	"github.com/tvmauto/partsbot/internal/session"
)

func (b *Bot) showAccount(ctx context.Context, chatID int64, sess *session.Session) {
	text := "👤 Account\n\nName: " + sess.Name + "\nEmail: " + sess.Email + "\n\nPick a field to change:"
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = accountKeyboard()
	b.send(m)
}

func (b *Bot) handleAccountCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, action string) {
	chatID := cb.Message.Chat.ID

	if action == "logout" {
		b.answerCallback(cb, "", false)
		b.sessions.Logout(ctx, chatID)
		_ = b.states.Reset(ctx, chatID)
		b.carts.Drop(chatID)
		m := tgbotapi.NewMessage(chatID, "Signed out.")
		m.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		b.send(m)
		return
	}

	sess := b.requireSession(ctx, chatID)
	if sess == nil {
		b.answerCallback(cb, "", false)
		return
	}

	var next dialog.State
	var prompt string
	switch action {
	case "name":
		next, prompt = dialog.StateAccName, "New name:"
	case "email":
		next, prompt = dialog.StateAccEmail, "New email:"
	case "password":
		next, prompt = dialog.StateAccPassword, "New password:"
	default:
		b.answerCallback(cb, "", false)
		return
	}
	b.answerCallback(cb, "", false)
	_ = b.states.Set(ctx, chatID, next, dialog.Payload{})
	m := tgbotapi.NewMessage(chatID, prompt)
	m.ReplyMarkup = cancelKeyboard()
	b.send(m)
}

func (b *Bot) handleAccountText(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	if text == "" {
		b.reply(chatID, "The value cannot be blank. Try again:")
		return
	}

	var upd api.ProfileUpdate
	switch st.State {
	case dialog.StateAccName:
		upd.Name = text
	case dialog.StateAccEmail:
		upd.Email = text
	case dialog.StateAccPassword:
		upd.Password = text
	}

	sess, err := b.sessions.UpdateProfile(ctx, chatID, upd)
	if err != nil {
		// the stored session is untouched on failure
		b.reply(chatID, "Update failed: "+err.Error())
		return
	}
	_ = b.states.Set(ctx, chatID, dialog.StateIdle, dialog.Payload{})
	b.reply(chatID, "Profile saved.")
	b.showAccount(ctx, chatID, sess)
}
