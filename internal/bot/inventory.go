package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tvmauto/partsbot/internal/api"
	"github.com/tvmauto/partsbot/internal/dialog"
	"github.com/tvmauto/partsbot/internal/domain/parts"
	"github.com/tvmauto/partsbot/internal/session"
)

const maxInventoryRows = 10

func (b *Bot) openInventory(ctx context.Context, chatID int64, sess *session.Session) {
	_ = b.states.Set(ctx, chatID, dialog.StateInvSearch, dialog.Payload{})
	b.renderInventory(ctx, chatID, sess.Token, "")
}

// handleInventorySearch filters the list as the operator types. Unlike the
// sale screen there is no debounce here; each entry refetches right away.
func (b *Bot) handleInventorySearch(ctx context.Context, chatID int64, keyword string) {
	sess := b.requireSession(ctx, chatID)
	if sess == nil {
		return
	}
	b.renderInventory(ctx, chatID, sess.Token, keyword)
}

func (b *Bot) renderInventory(ctx context.Context, chatID int64, token, keyword string) {
	list, err := b.client.ListParts(ctx, token, keyword)
	if err != nil {
		b.reply(chatID, "Could not load inventory: "+err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString("📦 Inventory")
	if keyword != "" {
		sb.WriteString(" — \"" + keyword + "\"")
	}
	fmt.Fprintf(&sb, " (%d parts)\n\n", len(list))

	shown := list
	if len(shown) > maxInventoryRows {
		shown = shown[:maxInventoryRows]
	}
	for _, p := range shown {
		mark := ""
		min := p.MinStockLevel
		if min == 0 {
			min = 5
		}
		if p.Quantity <= min {
			mark = " ⚠️"
		}
		loc := p.Location
		if loc == "" {
			loc = "N/A"
		}
		fmt.Fprintf(&sb, "%s (%s)\n  %s · stock %d%s · loc %s · %s\n",
			p.Name, p.SKU, p.Category, p.Quantity, mark, loc, money(p.Price))
	}
	if len(list) > maxInventoryRows {
		fmt.Fprintf(&sb, "…and %d more. Type to narrow the list.\n", len(list)-maxInventoryRows)
	}
	if len(list) == 0 {
		sb.WriteString("Nothing found. Type another name or SKU.\n")
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(shown)+1)
	for _, p := range shown {
		rows = append(rows, partKeyboard(p))
	}
	rows = append(rows, inventoryMenuKeyboard().InlineKeyboard...)

	m := tgbotapi.NewMessage(chatID, sb.String())
	m.ReplyMarkup = tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
	b.send(m)
}

func (b *Bot) handleInventoryCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, action string) {
	chatID := cb.Message.Chat.ID
	sess := b.requireSession(ctx, chatID)
	if sess == nil {
		b.answerCallback(cb, "", false)
		return
	}

	switch {
	case action == "new":
		b.answerCallback(cb, "", false)
		_ = b.states.Set(ctx, chatID, dialog.StateInvNewName, dialog.Payload{})
		m := tgbotapi.NewMessage(chatID, "New part.\nName:")
		m.ReplyMarkup = cancelKeyboard()
		b.send(m)

	case action == "export":
		b.answerCallback(cb, "", false)
		b.exportInventory(ctx, chatID, sess.Token)

	case strings.HasPrefix(action, "edit:"):
		b.answerCallback(cb, "", false)
		id := strings.TrimPrefix(action, "edit:")
		m := tgbotapi.NewMessage(chatID, "Which field?")
		m.ReplyMarkup = partEditKeyboard(id)
		b.send(m)

	case strings.HasPrefix(action, "editf:"):
		rest := strings.TrimPrefix(action, "editf:")
		id, field, ok := strings.Cut(rest, ":")
		if !ok {
			b.answerCallback(cb, "", false)
			return
		}
		b.answerCallback(cb, "", false)
		_ = b.states.Set(ctx, chatID, dialog.StateInvEditValue, dialog.Payload{"part_id": id, "field": field})
		m := tgbotapi.NewMessage(chatID, "New value for "+field+":")
		m.ReplyMarkup = cancelKeyboard()
		b.send(m)

	case strings.HasPrefix(action, "del:"):
		b.answerCallback(cb, "", false)
		id := strings.TrimPrefix(action, "del:")
		m := tgbotapi.NewMessage(chatID, "Delete this part? This cannot be undone.")
		m.ReplyMarkup = deleteConfirmKeyboard(id)
		b.send(m)

	case strings.HasPrefix(action, "delok:"):
		id := strings.TrimPrefix(action, "delok:")
		if err := b.client.DeletePart(ctx, sess.Token, id); err != nil {
			b.answerCallback(cb, "", false)
			if api.IsNotFound(err) {
				b.reply(chatID, "This part was already deleted.")
			} else {
				b.reply(chatID, "Delete failed: "+err.Error())
			}
			return
		}
		b.answerCallback(cb, "Deleted", false)
		b.renderInventory(ctx, chatID, sess.Token, "")

	default:
		b.answerCallback(cb, "", false)
	}
}

// handleInventoryCreateText walks the field-by-field create dialog; "-"
// skips the optional fields.
func (b *Bot) handleInventoryCreateText(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	ask := func(next dialog.State, prompt string) {
		_ = b.states.Set(ctx, chatID, next, st.Payload)
		b.reply(chatID, prompt)
	}

	switch st.State {
	case dialog.StateInvNewName:
		if text == "" {
			b.reply(chatID, "Name cannot be blank. Try again:")
			return
		}
		st.Payload["name"] = text
		ask(dialog.StateInvNewSKU, "SKU:")

	case dialog.StateInvNewSKU:
		if text == "" {
			b.reply(chatID, "SKU cannot be blank. Try again:")
			return
		}
		st.Payload["sku"] = text
		ask(dialog.StateInvNewCategory, "Category:")

	case dialog.StateInvNewCategory:
		st.Payload["category"] = text
		ask(dialog.StateInvNewQty, "Quantity in stock:")

	case dialog.StateInvNewQty:
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			b.reply(chatID, "Enter a whole number, 0 or more:")
			return
		}
		st.Payload["quantity"] = float64(n)
		ask(dialog.StateInvNewPrice, "Price:")

	case dialog.StateInvNewPrice:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || v < 0 {
			b.reply(chatID, "Enter a price, 0 or more:")
			return
		}
		st.Payload["price"] = v
		ask(dialog.StateInvNewMinStock, "Minimum stock level (\"-\" for default 5):")

	case dialog.StateInvNewMinStock:
		min := 5
		if text != "-" {
			n, err := strconv.Atoi(text)
			if err != nil || n < 0 {
				b.reply(chatID, "Enter a whole number or \"-\":")
				return
			}
			min = n
		}
		st.Payload["minstock"] = float64(min)
		ask(dialog.StateInvNewLocation, "Shelf location (\"-\" for none):")

	case dialog.StateInvNewLocation:
		sess := b.requireSession(ctx, chatID)
		if sess == nil {
			return
		}
		loc := text
		if loc == "-" {
			loc = ""
		}
		d := draftFromPayload(st.Payload)
		d.Location = loc

		p, err := b.client.CreatePart(ctx, sess.Token, d)
		if err != nil {
			b.reply(chatID, "Could not create the part: "+err.Error())
			return
		}
		_ = b.states.Set(ctx, chatID, dialog.StateInvSearch, dialog.Payload{})
		b.reply(chatID, fmt.Sprintf("Created %s (SKU %s), stock %d.", p.Name, p.SKU, p.Quantity))
		b.renderInventory(ctx, chatID, sess.Token, "")
	}
}

func draftFromPayload(p dialog.Payload) parts.Draft {
	name, _ := dialog.GetString(p, "name")
	sku, _ := dialog.GetString(p, "sku")
	category, _ := dialog.GetString(p, "category")
	qty, _ := dialog.GetInt(p, "quantity")
	min, _ := dialog.GetInt(p, "minstock")
	price, _ := p["price"].(float64)
	return parts.Draft{
		Name:          name,
		SKU:           sku,
		Category:      category,
		Quantity:      qty,
		Price:         price,
		MinStockLevel: min,
	}
}

// handleInventoryEditValue applies a single-field edit via a full PUT: the
// API replaces the record, so the current part seeds the draft.
func (b *Bot) handleInventoryEditValue(ctx context.Context, chatID int64, st *dialog.Item, text string) {
	sess := b.requireSession(ctx, chatID)
	if sess == nil {
		return
	}
	partID, _ := dialog.GetString(st.Payload, "part_id")
	field, _ := dialog.GetString(st.Payload, "field")

	p, err := b.findPart(ctx, sess.Token, partID)
	if err != nil {
		b.reply(chatID, "Could not load the part: "+err.Error())
		return
	}
	if p == nil {
		b.reply(chatID, "This part no longer exists.")
		_ = b.states.Set(ctx, chatID, dialog.StateInvSearch, dialog.Payload{})
		return
	}

	d := parts.Draft{
		Name: p.Name, SKU: p.SKU, Category: p.Category,
		Quantity: p.Quantity, Price: p.Price,
		MinStockLevel: p.MinStockLevel, Location: p.Location,
	}
	switch field {
	case "name":
		d.Name = text
	case "sku":
		d.SKU = text
	case "category":
		d.Category = text
	case "location":
		d.Location = text
	case "quantity":
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			b.reply(chatID, "Enter a whole number, 0 or more:")
			return
		}
		d.Quantity = n
	case "minstock":
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			b.reply(chatID, "Enter a whole number, 0 or more:")
			return
		}
		d.MinStockLevel = n
	case "price":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || v < 0 {
			b.reply(chatID, "Enter a price, 0 or more:")
			return
		}
		d.Price = v
	default:
		b.reply(chatID, "Unknown field.")
		return
	}

	upd, err := b.client.UpdatePart(ctx, sess.Token, partID, d)
	if err != nil {
		if api.IsNotFound(err) {
			b.reply(chatID, "This part was deleted meanwhile.")
		} else {
			b.reply(chatID, "Update failed: "+err.Error())
		}
		return
	}
	_ = b.states.Set(ctx, chatID, dialog.StateInvSearch, dialog.Payload{})
	b.reply(chatID, fmt.Sprintf("Saved. %s — stock %d, %s.", upd.Name, upd.Quantity, money(upd.Price)))
	b.renderInventory(ctx, chatID, sess.Token, "")
}
