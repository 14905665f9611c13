package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tvmauto/partsbot/internal/domain/cart"
	"github.com/tvmauto/partsbot/internal/domain/parts"
	"github.com/tvmauto/partsbot/internal/domain/sales"
)

const (
	btnDashboard = "📊 Dashboard"
	btnInventory = "📦 Inventory"
	btnNewSale   = "🛒 New Sale"
	btnHistory   = "🧾 Sales History"
	btnAccount   = "👤 Account"
)

func mainReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnDashboard)},
			{tgbotapi.NewKeyboardButton(btnInventory), tgbotapi.NewKeyboardButton(btnNewSale)},
			{tgbotapi.NewKeyboardButton(btnHistory), tgbotapi.NewKeyboardButton(btnAccount)},
		},
	}
}

func authKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔑 Sign in", "auth:login"),
			tgbotapi.NewInlineKeyboardButtonData("📝 Register", "auth:register"),
		),
	)
}

func cancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✖️ Cancel", "nav:cancel"),
		),
	)
}

func windowKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Week", "dash:win:week"),
			tgbotapi.NewInlineKeyboardButtonData("Month", "dash:win:month"),
			tgbotapi.NewInlineKeyboardButtonData("Year", "dash:win:year"),
		),
	)
}

// searchResultsKeyboard puts one "add to cart" button per found part.
func searchResultsKeyboard(found []parts.Part) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(found)+1)
	for _, p := range found {
		label := fmt.Sprintf("➕ %s · ₹%.2f · %d left", p.Name, p.Price, p.Quantity)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "sale:add:"+p.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🛒 View cart", "sale:cart"),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// cartKeyboard renders −/qty/+/remove controls per line plus the checkout row.
func cartKeyboard(lines []cart.Line) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(lines)+2)
	for _, l := range lines {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("−", "sale:dec:"+l.PartID),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s ×%d", l.SKU, l.Quantity), "sale:noop"),
			tgbotapi.NewInlineKeyboardButtonData("+", "sale:inc:"+l.PartID),
			tgbotapi.NewInlineKeyboardButtonData("🗑", "sale:del:"+l.PartID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("👤 Customer name", "sale:customer"),
		tgbotapi.NewInlineKeyboardButtonData("✅ Complete Sale", "sale:checkout"),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✖️ Clear cart", "sale:clear"),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func checkoutConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Confirm — deducts stock", "sale:confirm"),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "sale:cart"),
		),
	)
}

func inventoryMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add part", "inv:new"),
			tgbotapi.NewInlineKeyboardButtonData("📤 Export .xlsx", "inv:export"),
		),
	)
}

// partKeyboard is the edit/delete row under one inventory entry.
func partKeyboard(p parts.Part) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✏️ "+p.Name, "inv:edit:"+p.ID),
		tgbotapi.NewInlineKeyboardButtonData("🗑", "inv:del:"+p.ID),
	)
}

func partEditKeyboard(id string) tgbotapi.InlineKeyboardMarkup {
	row := func(label, field string) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("inv:editf:%s:%s", id, field)),
		)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{
		row("Name", "name"),
		row("SKU", "sku"),
		row("Category", "category"),
		row("Quantity", "quantity"),
		row("Price", "price"),
		row("Min stock level", "minstock"),
		row("Location", "location"),
	}}
}

func deleteConfirmKeyboard(id string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, delete", "inv:delok:"+id),
			tgbotapi.NewInlineKeyboardButtonData("✖️ Keep it", "nav:cancel"),
		),
	)
}

func historyKeyboard(list []sales.Sale) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+1)
	for _, s := range list {
		label := fmt.Sprintf("🧾 %s · %s · ₹%.2f", invoiceNo(s.ID), s.CustomerName, s.GrandTotal)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "hist:view:"+s.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔎 Filter by customer", "hist:filter"),
		tgbotapi.NewInlineKeyboardButtonData("📤 Export .xlsx", "hist:export"),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func accountKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Name", "acc:name"),
			tgbotapi.NewInlineKeyboardButtonData("Email", "acc:email"),
			tgbotapi.NewInlineKeyboardButtonData("Password", "acc:password"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚪 Log out", "acc:logout"),
		),
	)
}
