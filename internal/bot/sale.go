package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tvmauto/partsbot/internal/dialog"
	"github.com/tvmauto/partsbot/internal/domain/cart"
	"github.com/tvmauto/partsbot/internal/domain/parts"
	"github.com/tvmauto/partsbot/internal/infra/metrics"
)

const maxSearchResults = 8

func (b *Bot) openSale(ctx context.Context, chatID int64) {
	st, _ := b.states.Get(ctx, chatID)
	_ = b.states.Set(ctx, chatID, dialog.StateSaleSearch, st.Payload)

	eng := b.carts.Get(chatID)
	if eng.Len() > 0 {
		b.showCart(ctx, chatID)
		return
	}
	m := tgbotapi.NewMessage(chatID, "🛒 New sale.\nType a part name or SKU to search the inventory.")
	m.ReplyMarkup = cancelKeyboard()
	b.send(m)
}

// handleSaleSearch schedules a debounced catalog search. The API call runs
// after the delay on the timer goroutine; a result whose sequence went stale
// is dropped, never rendered.
func (b *Bot) handleSaleSearch(ctx context.Context, chatID int64, keyword string) {
	sess := b.requireSession(ctx, chatID)
	if sess == nil {
		return
	}
	token := sess.Token

	b.search.Trigger(chatID, func(seq uint64) {
		metrics.SearchesDispatched.Inc()
		found, err := b.client.ListParts(ctx, token, keyword)
		if b.search.Stale(chatID, seq) {
			metrics.SearchesSuperseded.Inc()
			return
		}
		if err != nil {
			b.reply(chatID, "Search failed: "+err.Error())
			return
		}
		if len(found) == 0 {
			b.reply(chatID, "No parts match \""+keyword+"\".")
			return
		}
		if len(found) > maxSearchResults {
			found = found[:maxSearchResults]
		}

		var sb strings.Builder
		sb.WriteString("Available parts:\n")
		for _, p := range found {
			loc := p.Location
			if loc == "" {
				loc = "N/A"
			}
			fmt.Fprintf(&sb, "• %s — SKU %s, loc %s, stock %d, %s\n",
				p.Name, p.SKU, loc, p.Quantity, money(p.Price))
		}
		m := tgbotapi.NewMessage(chatID, sb.String())
		m.ReplyMarkup = searchResultsKeyboard(found)
		b.send(m)
	})
}

func (b *Bot) handleSaleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, action string) {
	chatID := cb.Message.Chat.ID

	if action == "noop" {
		b.answerCallback(cb, "", false)
		return
	}

	sess := b.requireSession(ctx, chatID)
	if sess == nil {
		b.answerCallback(cb, "", false)
		return
	}
	eng := b.carts.Get(chatID)

	switch {
	case strings.HasPrefix(action, "add:"):
		b.addToCart(ctx, cb, sess.Token, strings.TrimPrefix(action, "add:"))

	case strings.HasPrefix(action, "inc:"):
		id := strings.TrimPrefix(action, "inc:")
		if l, ok := eng.Line(id); ok {
			if err := eng.SetQuantity(id, l.Quantity+1); err != nil {
				b.answerCallback(cb, err.Error(), true)
				return
			}
		}
		b.answerCallback(cb, "", false)
		b.showCart(ctx, chatID)

	case strings.HasPrefix(action, "dec:"):
		id := strings.TrimPrefix(action, "dec:")
		if l, ok := eng.Line(id); ok {
			_ = eng.SetQuantity(id, l.Quantity-1)
		}
		b.answerCallback(cb, "", false)
		b.showCart(ctx, chatID)

	case strings.HasPrefix(action, "del:"):
		eng.RemoveItem(strings.TrimPrefix(action, "del:"))
		b.answerCallback(cb, "Removed", false)
		b.showCart(ctx, chatID)

	case action == "clear":
		eng.Clear()
		b.answerCallback(cb, "Cart cleared", false)
		b.openSale(ctx, chatID)

	case action == "cart":
		b.answerCallback(cb, "", false)
		b.showCart(ctx, chatID)

	case action == "customer":
		b.answerCallback(cb, "", false)
		st, _ := b.states.Get(ctx, chatID)
		_ = b.states.Set(ctx, chatID, dialog.StateSaleCustomer, st.Payload)
		m := tgbotapi.NewMessage(chatID, "Customer name:")
		m.ReplyMarkup = cancelKeyboard()
		b.send(m)

	case action == "checkout":
		b.confirmCheckout(ctx, cb)

	case action == "confirm":
		b.completeCheckout(ctx, cb, sess.Token)

	default:
		b.answerCallback(cb, "", false)
	}
}

// addToCart re-reads the part so stock limits reflect the catalog at the
// moment of the tap, not at search time.
func (b *Bot) addToCart(ctx context.Context, cb *tgbotapi.CallbackQuery, token, partID string) {
	chatID := cb.Message.Chat.ID
	p, err := b.findPart(ctx, token, partID)
	if err != nil {
		b.answerCallback(cb, "", false)
		b.reply(chatID, "Could not load the part: "+err.Error())
		return
	}
	if p == nil {
		b.answerCallback(cb, "This part no longer exists.", true)
		return
	}

	eng := b.carts.Get(chatID)
	if err := eng.AddItem(*p); err != nil {
		switch {
		case errors.Is(err, cart.ErrOutOfStock):
			b.answerCallback(cb, "Out of stock!", true)
		case errors.Is(err, cart.ErrInsufficientStock):
			b.answerCallback(cb, fmt.Sprintf("Insufficient stock! Only %d available.", p.Quantity), true)
		default:
			b.answerCallback(cb, err.Error(), true)
		}
		return
	}
	b.answerCallback(cb, p.Name+" added", false)
	b.showCart(ctx, chatID)
}

func (b *Bot) findPart(ctx context.Context, token, partID string) (*parts.Part, error) {
	list, err := b.client.ListParts(ctx, token, "")
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == partID {
			return &list[i], nil
		}
	}
	return nil, nil
}

func (b *Bot) showCart(ctx context.Context, chatID int64) {
	eng := b.carts.Get(chatID)
	st, _ := b.states.Get(ctx, chatID)
	_ = b.states.Set(ctx, chatID, dialog.StateSaleSearch, st.Payload)

	if eng.Len() == 0 {
		m := tgbotapi.NewMessage(chatID, "Cart is empty. Type a part name or SKU to search.")
		m.ReplyMarkup = cancelKeyboard()
		b.send(m)
		return
	}

	customer, _ := dialog.GetString(st.Payload, "customer")
	lines := eng.Lines()
	t := eng.Totals(b.gstRate)

	var sb strings.Builder
	fmt.Fprintf(&sb, "🛒 Current sale — %d lines\n", len(lines))
	if customer != "" {
		sb.WriteString("Customer: " + customer + "\n")
	}
	sb.WriteString("\n")
	for _, l := range lines {
		fmt.Fprintf(&sb, "%s (%s)\n  %d × %s = %s\n", l.Name, l.SKU, l.Quantity, money(l.UnitPrice), money(l.LineTotal))
	}
	fmt.Fprintf(&sb, "\nSubtotal: %s\nGST (%.0f%%): %s\nTotal: %s",
		money(t.Subtotal), b.gstRate, money(t.GSTAmount), money(t.GrandTotal))

	m := tgbotapi.NewMessage(chatID, sb.String())
	m.ReplyMarkup = cartKeyboard(lines)
	b.send(m)
}

func (b *Bot) handleSaleCustomer(ctx context.Context, chatID int64, text string) {
	if strings.TrimSpace(text) == "" {
		b.reply(chatID, "Customer name cannot be blank. Try again:")
		return
	}
	st, _ := b.states.Get(ctx, chatID)
	st.Payload["customer"] = text
	_ = b.states.Set(ctx, chatID, dialog.StateSaleSearch, st.Payload)
	b.showCart(ctx, chatID)
}

// confirmCheckout runs the local preconditions: non-empty cart, non-blank
// customer name. No network call happens until both hold.
func (b *Bot) confirmCheckout(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	eng := b.carts.Get(chatID)
	if eng.Len() == 0 {
		b.answerCallback(cb, "Cart is empty.", true)
		return
	}
	st, _ := b.states.Get(ctx, chatID)
	customer, _ := dialog.GetString(st.Payload, "customer")
	if strings.TrimSpace(customer) == "" {
		b.answerCallback(cb, "Please enter a customer name first.", true)
		return
	}
	b.answerCallback(cb, "", false)

	t := eng.Totals(b.gstRate)
	text := fmt.Sprintf("Confirm checkout for %s?\nThis will deduct stock.\n\nTotal: %s", customer, money(t.GrandTotal))
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = checkoutConfirmKeyboard()
	b.send(m)
}

// completeCheckout submits the sale. On any API failure the cart is left
// exactly as it was so the operator can retry.
func (b *Bot) completeCheckout(ctx context.Context, cb *tgbotapi.CallbackQuery, token string) {
	chatID := cb.Message.Chat.ID
	eng := b.carts.Get(chatID)
	st, _ := b.states.Get(ctx, chatID)
	customer, _ := dialog.GetString(st.Payload, "customer")

	if eng.Len() == 0 || strings.TrimSpace(customer) == "" {
		b.answerCallback(cb, "Nothing to check out.", true)
		return
	}

	sale, err := b.client.CreateSale(ctx, token, eng.Draft(customer, b.gstRate))
	if err != nil {
		metrics.CheckoutFailures.Inc()
		b.answerCallback(cb, "", false)
		b.reply(chatID, "Checkout failed: "+err.Error()+"\nThe cart was kept, fix and retry.")
		return
	}
	metrics.Checkouts.Inc()
	eng.Clear()
	delete(st.Payload, "customer")
	_ = b.states.Set(ctx, chatID, dialog.StateIdle, st.Payload)

	b.answerCallback(cb, "Sale recorded", false)
	b.send(tgbotapi.NewMessage(chatID, invoiceText(sale, b.tz)))
	b.log.Info("sale recorded", "chat_id", chatID, "sale_id", sale.ID, "total", sale.GrandTotal)
}
