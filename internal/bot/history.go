package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tvmauto/partsbot/internal/dialog"
	"github.com/tvmauto/partsbot/internal/domain/sales"
	"github.com/tvmauto/partsbot/internal/session"
)

const maxHistoryRows = 10

func (b *Bot) showHistory(ctx context.Context, chatID int64, sess *session.Session, filter string) {
	list, err := b.client.ListSales(ctx, sess.Token)
	if err != nil {
		b.reply(chatID, "Could not load sales: "+err.Error())
		return
	}

	shown := filterSales(list, filter)
	total := len(shown)
	if len(shown) > maxHistoryRows {
		shown = shown[:maxHistoryRows]
	}

	var sb strings.Builder
	sb.WriteString("🧾 Sales history")
	if filter != "" {
		sb.WriteString(" — \"" + filter + "\"")
	}
	fmt.Fprintf(&sb, " (%d sales)\n\n", total)
	for _, s := range shown {
		fmt.Fprintf(&sb, "%s · %s\n  %s · %d items · %s\n",
			s.CreatedAt.In(b.tz).Format("02 Jan 15:04"), invoiceNo(s.ID),
			s.CustomerName, len(s.Items), money(s.GrandTotal))
	}
	if total == 0 {
		sb.WriteString("No sales found matching your criteria.\n")
	}

	m := tgbotapi.NewMessage(chatID, sb.String())
	m.ReplyMarkup = historyKeyboard(shown)
	b.send(m)
}

// filterSales matches the customer name or an invoice id fragment,
// case-insensitively. An empty filter passes everything through.
func filterSales(list []sales.Sale, filter string) []sales.Sale {
	if filter == "" {
		return list
	}
	needle := strings.ToLower(filter)
	out := make([]sales.Sale, 0, len(list))
	for _, s := range list {
		if strings.Contains(strings.ToLower(s.CustomerName), needle) ||
			strings.Contains(strings.ToLower(s.ID), needle) {
			out = append(out, s)
		}
	}
	return out
}

func (b *Bot) handleHistoryCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, action string) {
	chatID := cb.Message.Chat.ID
	sess := b.requireSession(ctx, chatID)
	if sess == nil {
		b.answerCallback(cb, "", false)
		return
	}

	switch {
	case strings.HasPrefix(action, "view:"):
		id := strings.TrimPrefix(action, "view:")
		list, err := b.client.ListSales(ctx, sess.Token)
		if err != nil {
			b.answerCallback(cb, "", false)
			b.reply(chatID, "Could not load sales: "+err.Error())
			return
		}
		for i := range list {
			if list[i].ID == id {
				b.answerCallback(cb, "", false)
				b.reply(chatID, invoiceText(&list[i], b.tz))
				return
			}
		}
		b.answerCallback(cb, "Sale not found.", true)

	case action == "filter":
		b.answerCallback(cb, "", false)
		_ = b.states.Set(ctx, chatID, dialog.StateHistFilter, dialog.Payload{})
		m := tgbotapi.NewMessage(chatID, "Customer name (or invoice id fragment):")
		m.ReplyMarkup = cancelKeyboard()
		b.send(m)

	case action == "export":
		b.answerCallback(cb, "", false)
		b.exportHistory(ctx, chatID, sess.Token)

	default:
		b.answerCallback(cb, "", false)
	}
}
