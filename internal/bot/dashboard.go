package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tvmauto/partsbot/internal/domain/report"
	"github.com/tvmauto/partsbot/internal/domain/sales"
	"github.com/tvmauto/partsbot/internal/session"
)

func (b *Bot) showDashboard(ctx context.Context, chatID int64, sess *session.Session) {
	partList, err := b.client.ListParts(ctx, sess.Token, "")
	if err != nil {
		b.reply(chatID, "Could not load inventory: "+err.Error())
		return
	}
	saleList, err := b.client.ListSales(ctx, sess.Token)
	if err != nil {
		b.reply(chatID, "Could not load sales: "+err.Error())
		return
	}

	now := b.now()
	st := report.Compute(partList, saleList, now)
	buckets := report.Aggregate(saleList, report.Week, now)

	var sb strings.Builder
	sb.WriteString("📊 " + shopName + "\n\n")
	fmt.Fprintf(&sb, "Total revenue: %s\n", money(st.TotalRevenue))
	fmt.Fprintf(&sb, "Stock on hand: %d items\n", st.TotalStock)
	fmt.Fprintf(&sb, "Low stock: %d parts need restock\n", st.LowStockCount)
	fmt.Fprintf(&sb, "Sales today: %s\n\n", money(st.SalesToday))

	sb.WriteString(renderChart("Last 7 days", buckets))

	recent := report.Recent(saleList, 5)
	if len(recent) > 0 {
		sb.WriteString("\nRecent sales:\n")
		for _, s := range recent {
			fmt.Fprintf(&sb, "• %s — %s, %d items, %s\n",
				invoiceNo(s.ID), s.CustomerName, len(s.Items), money(s.GrandTotal))
		}
	}

	m := tgbotapi.NewMessage(chatID, sb.String())
	m.ReplyMarkup = windowKeyboard()
	b.send(m)
}

func (b *Bot) handleWindowCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, raw string) {
	chatID := cb.Message.Chat.ID
	sess := b.requireSession(ctx, chatID)
	if sess == nil {
		b.answerCallback(cb, "", false)
		return
	}

	var w report.Window
	var title string
	switch raw {
	case "month":
		w, title = report.Month, "Last 30 days"
	case "year":
		w, title = report.Year, "Last 12 months"
	default:
		w, title = report.Week, "Last 7 days"
	}

	saleList, err := b.client.ListSales(ctx, sess.Token)
	if err != nil {
		b.answerCallback(cb, "", false)
		b.reply(chatID, "Could not load sales: "+err.Error())
		return
	}
	b.answerCallback(cb, "", false)

	buckets := report.Aggregate(saleList, w, b.now())
	salesTotal, profitTotal := report.WindowTotals(buckets)

	text := renderChart(title, buckets) +
		fmt.Sprintf("\nPeriod sales: %s\nPeriod profit: %s\n", money(salesTotal), money(profitTotal))

	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = windowKeyboard()
	b.send(m)
}

// renderChart draws the bucket series as a text bar chart. Zero buckets stay
// visible as empty rows so the window length is readable. Long windows skip
// empty days to fit a Telegram message.
func renderChart(title string, buckets []report.Bucket) string {
	var max float64
	for _, bk := range buckets {
		if bk.SalesTotal > max {
			max = bk.SalesTotal
		}
	}

	skipEmpty := len(buckets) > 12
	var sb strings.Builder
	sb.WriteString(title + ":\n")
	for _, bk := range buckets {
		if skipEmpty && bk.SalesTotal == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%-7s %s %s\n", bk.Label, bar(bk.SalesTotal, max, 8), money(bk.SalesTotal))
	}
	if max == 0 {
		sb.WriteString("No sales in this window.\n")
	}
	return sb.String()
}

// invoiceText keeps invoice rendering in one place for both the checkout
// screen and the history view.
func invoiceText(s *sales.Sale, loc *time.Location) string {
	var sb strings.Builder
	sb.WriteString(shopName + "\nAutomotive Parts & Accessories\n")
	sb.WriteString(strings.Repeat("—", 24) + "\n")
	fmt.Fprintf(&sb, "Invoice %s\n%s\nBill to: %s\n",
		invoiceNo(s.ID), s.CreatedAt.In(loc).Format("02 Jan 2006 15:04"), s.CustomerName)
	sb.WriteString(strings.Repeat("—", 24) + "\n")
	for _, it := range s.Items {
		fmt.Fprintf(&sb, "%s ×%d @ %s = %s\n", it.Name, it.Quantity, money(it.Price), money(it.Total))
	}
	sb.WriteString(strings.Repeat("—", 24) + "\n")
	fmt.Fprintf(&sb, "Subtotal: %s\n", money(s.Subtotal))
	fmt.Fprintf(&sb, "GST (%.0f%%): %s\n", s.GSTRate, money(s.GSTAmount))
	fmt.Fprintf(&sb, "Total: %s\n", money(s.GrandTotal))
	sb.WriteString("\nThank you for your business!\nReturns accepted within 7 days.")
	return sb.String()
}
