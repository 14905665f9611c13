package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tvmauto/partsbot/internal/dialog"
)

func (b *Bot) onMessage(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	switch msg.Text {
	case btnDashboard:
		if sess := b.requireSession(ctx, chatID); sess != nil {
			b.showDashboard(ctx, chatID, sess)
		}
		return
	case btnInventory:
		if sess := b.requireSession(ctx, chatID); sess != nil {
			b.openInventory(ctx, chatID, sess)
		}
		return
	case btnNewSale:
		if sess := b.requireSession(ctx, chatID); sess != nil {
			b.openSale(ctx, chatID)
		}
		return
	case btnHistory:
		if sess := b.requireSession(ctx, chatID); sess != nil {
			b.showHistory(ctx, chatID, sess, "")
		}
		return
	case btnAccount:
		if sess := b.requireSession(ctx, chatID); sess != nil {
			b.showAccount(ctx, chatID, sess)
		}
		return
	}

	b.handleStateText(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		sess, err := b.sessions.Get(ctx, chatID)
		if err != nil {
			b.log.Error("session load failed", "chat_id", chatID, "err", err)
			b.reply(chatID, "Something went wrong, try again.")
			return
		}
		if sess != nil {
			m := tgbotapi.NewMessage(chatID, "Welcome back, "+sess.Name+"! Pick a screen below.")
			m.ReplyMarkup = mainReplyKeyboard()
			b.send(m)
			return
		}
		m := tgbotapi.NewMessage(chatID, shopName+" point of sale.\nSign in with your store account to begin.")
		m.ReplyMarkup = authKeyboard()
		b.send(m)

	case "help":
		b.reply(chatID,
			"Commands:\n/start — open the store menu\n/logout — sign out on this chat\n/help — this message")

	case "logout":
		b.sessions.Logout(ctx, chatID)
		_ = b.states.Reset(ctx, chatID)
		b.carts.Drop(chatID)
		m := tgbotapi.NewMessage(chatID, "Signed out. The session on this chat was cleared.")
		m.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		b.send(m)

	default:
		b.reply(chatID, "Unknown command. Try /help")
	}
}

// handleStateText dispatches free text by the chat's dialog state.
func (b *Bot) handleStateText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	st, err := b.states.Get(ctx, chatID)
	if err != nil {
		b.log.Error("state load failed", "chat_id", chatID, "err", err)
		return
	}

	switch st.State {
	case dialog.StateAuthEmail, dialog.StateAuthPassword,
		dialog.StateRegName, dialog.StateRegEmail, dialog.StateRegPassword:
		b.handleAuthText(ctx, chatID, st, text)

	case dialog.StateInvSearch:
		b.handleInventorySearch(ctx, chatID, text)
	case dialog.StateInvNewName, dialog.StateInvNewSKU, dialog.StateInvNewCategory,
		dialog.StateInvNewQty, dialog.StateInvNewPrice, dialog.StateInvNewMinStock,
		dialog.StateInvNewLocation:
		b.handleInventoryCreateText(ctx, chatID, st, text)
	case dialog.StateInvEditValue:
		b.handleInventoryEditValue(ctx, chatID, st, text)

	case dialog.StateSaleSearch:
		b.handleSaleSearch(ctx, chatID, text)
	case dialog.StateSaleCustomer:
		b.handleSaleCustomer(ctx, chatID, text)

	case dialog.StateHistFilter:
		if sess := b.requireSession(ctx, chatID); sess != nil {
			_ = b.states.Set(ctx, chatID, dialog.StateIdle, dialog.Payload{})
			b.showHistory(ctx, chatID, sess, text)
		}

	case dialog.StateAccName, dialog.StateAccEmail, dialog.StateAccPassword:
		b.handleAccountText(ctx, chatID, st, text)

	default:
		b.reply(chatID, "Pick a screen from the menu below, or /help.")
	}
}

func (b *Bot) onCallback(ctx context.Context, upd tgbotapi.Update) {
	cb := upd.CallbackQuery
	chatID := cb.Message.Chat.ID
	data := cb.Data

	switch {
	case data == "nav:cancel":
		b.answerCallback(cb, "", false)
		_ = b.states.Set(ctx, chatID, dialog.StateIdle, dialog.Payload{})
		b.reply(chatID, "Cancelled.")

	case data == "auth:login":
		b.answerCallback(cb, "", false)
		b.startLogin(ctx, chatID)
	case data == "auth:register":
		b.answerCallback(cb, "", false)
		b.startRegister(ctx, chatID)

	case strings.HasPrefix(data, "dash:win:"):
		b.handleWindowCallback(ctx, cb, strings.TrimPrefix(data, "dash:win:"))

	case strings.HasPrefix(data, "inv:"):
		b.handleInventoryCallback(ctx, cb, strings.TrimPrefix(data, "inv:"))

	case strings.HasPrefix(data, "sale:"):
		b.handleSaleCallback(ctx, cb, strings.TrimPrefix(data, "sale:"))

	case strings.HasPrefix(data, "hist:"):
		b.handleHistoryCallback(ctx, cb, strings.TrimPrefix(data, "hist:"))

	case strings.HasPrefix(data, "acc:"):
		b.handleAccountCallback(ctx, cb, strings.TrimPrefix(data, "acc:"))

	default:
		b.answerCallback(cb, "", false)
	}
}
