package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/89089599151/designer-clicker-bot/internal/catalog"
)

// slicePage вырезает страницу и говорит, есть ли соседние.
func slicePage[T any](items []T, page int) ([]T, bool, bool) {
	start := page * pageSize
	if start >= len(items) {
		return nil, page > 0, false
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page > 0, end < len(items)
}

func (b *Bot) renderOrders(ctx context.Context, chatID, tgID int64, firstName string) {
	player, err := b.players.GetOrCreate(ctx, tgID, firstName)
	if err != nil {
		b.log.Error("load player failed", "tg_id", tgID, "err", err)
		return
	}

	st := b.states.get(chatID)
	all := b.orders.Available(player.Level)
	page, hasPrev, hasNext := slicePage(all, st.Page)
	if len(page) == 0 {
		b.states.setCodes(chatID, nil)
		b.send(chatID, MsgNoOrders, kbMenuOnly())
		return
	}

	lines := []string{MsgOrdersHeader, ""}
	codes := make([]string, 0, len(page))
	for i, def := range page {
		lines = append(lines, fmt.Sprintf("[%d] %s — мин. ур. %d", i+1, def.Title, def.MinLevel))
		codes = append(codes, def.Code)
	}
	b.states.setCodes(chatID, codes)

	b.send(chatID, strings.Join(lines, "\n"), kbNumericPage(len(page), hasPrev, hasNext))
}

func (b *Bot) renderBoosts(ctx context.Context, chatID, tgID int64, firstName string) {
	player, err := b.players.GetOrCreate(ctx, tgID, firstName)
	if err != nil {
		b.log.Error("load player failed", "tg_id", tgID, "err", err)
		return
	}

	views, err := b.shop.BoostLevels(ctx, player.ID)
	if err != nil {
		b.log.Error("load boosts failed", "tg_id", tgID, "err", err)
		return
	}

	st := b.states.get(chatID)
	page, hasPrev, hasNext := slicePage(views, st.Page)

	lines := []string{"Бусты (уровень, цена следующего):", ""}
	codes := make([]string, 0, len(page))
	for i, v := range page {
		lines = append(lines, fmt.Sprintf("[%d] %s — ур. %d, %d ₽", i+1, v.Boost.Name, v.Level, v.NextCost))
		codes = append(codes, v.Boost.Code)
	}
	b.states.setCodes(chatID, codes)

	b.send(chatID, strings.Join(lines, "\n"), kbNumericPage(len(page), hasPrev, hasNext))
}

func (b *Bot) renderItems(ctx context.Context, chatID, tgID int64, firstName string) {
	player, err := b.players.GetOrCreate(ctx, tgID, firstName)
	if err != nil {
		b.log.Error("load player failed", "tg_id", tgID, "err", err)
		return
	}

	st := b.states.get(chatID)
	all := b.catalog.ItemsForLevel(player.Level)
	page, hasPrev, hasNext := slicePage(all, st.Page)
	if len(page) == 0 {
		b.states.setCodes(chatID, nil)
		b.send(chatID, "Нет доступных предметов.", kbMenuOnly())
		return
	}

	lines := []string{"Экипировка (цена, мин. уровень):", ""}
	codes := make([]string, 0, len(page))
	for i, def := range page {
		lines = append(lines, fmt.Sprintf("[%d] %s — %d ₽, ур. %d", i+1, def.Name, def.Price, def.MinLevel))
		codes = append(codes, def.Code)
	}
	b.states.setCodes(chatID, codes)

	b.send(chatID, strings.Join(lines, "\n"), kbNumericPage(len(page), hasPrev, hasNext))
}

func (b *Bot) renderTeam(ctx context.Context, chatID, tgID int64, firstName string) {
	player, err := b.players.GetOrCreate(ctx, tgID, firstName)
	if err != nil {
		b.log.Error("load player failed", "tg_id", tgID, "err", err)
		return
	}

	views, err := b.shop.TeamLevels(ctx, player.ID)
	if err != nil {
		b.log.Error("load team failed", "tg_id", tgID, "err", err)
		return
	}

	st := b.states.get(chatID)
	page, hasPrev, hasNext := slicePage(views, st.Page)

	lines := []string{MsgTeamHeader, ""}
	codes := make([]string, 0, len(page))
	for i, v := range page {
		lines = append(lines, fmt.Sprintf("[%d] %s — %.1f/мин, ур. %d, %d ₽", i+1, v.Member.Name, v.IncomePerMin, v.Level, v.NextCost))
		codes = append(codes, v.Member.Code)
	}
	b.states.setCodes(chatID, codes)

	b.send(chatID, strings.Join(lines, "\n"), kbNumericPage(len(page), hasPrev, hasNext))
}

func (b *Bot) renderWardrobe(ctx context.Context, chatID, tgID int64, firstName string) {
	player, err := b.players.GetOrCreate(ctx, tgID, firstName)
	if err != nil {
		b.log.Error("load player failed", "tg_id", tgID, "err", err)
		return
	}

	inv, err := b.shop.Inventory(ctx, player.ID)
	if err != nil {
		b.log.Error("load inventory failed", "tg_id", tgID, "err", err)
		return
	}

	equipped := make(map[string]string)
	for _, e := range inv.Equipped {
		if e.ItemCode != nil {
			if def, ok := b.catalog.Item(*e.ItemCode); ok {
				equipped[e.Slot] = def.Name
			}
		}
	}

	lines := []string{MsgWardrobe, ""}
	for _, slot := range catalog.EquipmentSlots {
		name := equipped[slot]
		if name == "" {
			name = "пусто"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", slot, name))
	}

	var codes []string
	if len(inv.Items) > 0 {
		lines = append(lines, "", "Инвентарь (номер для экипировки):")
		for i, def := range inv.Items {
			lines = append(lines, fmt.Sprintf("[%d] %s (%s)", i+1, def.Name, def.Slot))
			codes = append(codes, def.Code)
		}
	}
	b.states.setCodes(chatID, codes)

	b.send(chatID, strings.Join(lines, "\n"), kbNumericPage(len(codes), false, false))
}

func (b *Bot) renderProfile(ctx context.Context, chatID, tgID int64, firstName string) {
	view, err := b.players.Profile(ctx, tgID, firstName)
	if err != nil {
		b.log.Error("load profile failed", "tg_id", tgID, "err", err)
		return
	}

	orderLine := "нет"
	if view.ActiveOrder != nil {
		orderLine = fmt.Sprintf("%s (%d/%d)", view.OrderTitle, view.ActiveOrder.ProgressClicks, view.ActiveOrder.RequiredClicks)
	}

	text := fmt.Sprintf(
		"Профиль\nУровень: %d\nXP: %d/%d\nБаланс: %d ₽\nCP: %d\nПассивный доход: %d/мин\nТекущий заказ: %s",
		view.Player.Level, view.Player.XP, view.XPRequired,
		view.Player.Balance, view.Stats.CP, view.IncomePerMin, orderLine,
	)

	b.send(chatID, text, kbProfileMenu(view.ActiveOrder != nil))

	unlocked, err := b.achievements.ConsumeUnnotified(ctx, view.Player.ID)
	if err == nil {
		b.notifyUnlocks(chatID, unlocked)
	}
}
