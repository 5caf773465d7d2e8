package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/catalog"
	"github.com/89089599151/designer-clicker-bot/internal/domain"
	"github.com/89089599151/designer-clicker-bot/internal/logger"
	"github.com/89089599151/designer-clicker-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot - telegram-оболочка над движком: reply-клавиатуры, пагинация,
// выбор цифрой.
type Bot struct {
	bot          *tgbotapi.BotAPI
	catalog      *catalog.Registry
	players      *service.PlayerService
	orders       *service.OrderService
	shop         *service.ShopService
	stats        *service.StatsService
	achievements *service.AchievementService

	states  *stateStore
	limiter *clickLimiter
	stopCh  chan struct{}
	wg      sync.WaitGroup
	log     *slog.Logger
}

func New(token string, reg *catalog.Registry, players *service.PlayerService, orders *service.OrderService, shop *service.ShopService, stats *service.StatsService, achievements *service.AchievementService, clickRateBase, clickRateMax int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log := logger.With("component", "bot")
	log.Info("bot authorized", "username", api.Self.UserName)

	return &Bot{
		bot:          api,
		catalog:      reg,
		players:      players,
		orders:       orders,
		shop:         shop,
		stats:        stats,
		achievements: achievements,
		states:       newStateStore(),
		limiter:      newClickLimiter(clickRateBase, clickRateMax),
		stopCh:       make(chan struct{}),
		log:          log,
	}, nil
}

// Start runs the update loop until Stop is called.
func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	b.log.Info("starting bot update loop")

	for {
		select {
		case <-b.stopCh:
			b.log.Info("stopping bot update loop")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.From == nil {
				continue
			}

			b.wg.Add(1)
			go func(msg *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleMessage(msg)
			}(update.Message)
		}
	}
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	close(b.stopCh)
	b.bot.StopReceivingUpdates()
	b.wg.Wait()
}

func (b *Bot) send(chatID int64, text string, kb interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = kb
	}
	if _, err := b.bot.Send(msg); err != nil {
		b.log.Warn("send failed", "chat_id", chatID, "err", err)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chatID := msg.Chat.ID
	tgID := msg.From.ID
	firstName := msg.From.FirstName
	text := msg.Text

	if msg.IsCommand() {
		if msg.Command() == "start" {
			if _, err := b.players.GetOrCreate(ctx, tgID, firstName); err != nil {
				b.log.Error("start failed", "tg_id", tgID, "err", err)
				return
			}
			b.states.reset(chatID)
			b.send(chatID, MsgWelcome, kbMainMenu())
		}
		return
	}

	switch text {
	case BtnMenu:
		b.states.reset(chatID)
		b.send(chatID, MsgMenuHint, kbMainMenu())
	case BtnClick:
		b.handleClick(ctx, chatID, tgID, firstName)
	case BtnOrders:
		b.states.open(chatID, screenOrders)
		b.renderOrders(ctx, chatID, tgID, firstName)
	case BtnShop:
		b.states.open(chatID, screenMenu)
		b.send(chatID, MsgShopHeader, kbShopMenu())
	case BtnBoosts:
		b.states.open(chatID, screenBoosts)
		b.renderBoosts(ctx, chatID, tgID, firstName)
	case BtnEquipment:
		b.states.open(chatID, screenItems)
		b.renderItems(ctx, chatID, tgID, firstName)
	case BtnTeam:
		b.states.open(chatID, screenTeam)
		b.renderTeam(ctx, chatID, tgID, firstName)
	case BtnWardrobe:
		b.states.open(chatID, screenWardrobe)
		b.renderWardrobe(ctx, chatID, tgID, firstName)
	case BtnProfile:
		b.renderProfile(ctx, chatID, tgID, firstName)
	case BtnDaily:
		b.handleDaily(ctx, chatID, tgID, firstName)
	case BtnCancelOrder:
		b.handleCancelOrder(ctx, chatID, tgID, firstName)
	case BtnPrev:
		b.turnPage(ctx, chatID, tgID, firstName, -1)
	case BtnNext:
		b.turnPage(ctx, chatID, tgID, firstName, +1)
	default:
		if n, err := strconv.Atoi(text); err == nil {
			b.handleChoice(ctx, chatID, tgID, firstName, n)
		}
	}
}

func (b *Bot) handleClick(ctx context.Context, chatID, tgID int64, firstName string) {
	bonus, err := b.stats.RateLimitBonus(ctx, tgID)
	if err != nil {
		bonus = 0
	}
	if !b.limiter.allow(tgID, bonus) {
		b.send(chatID, MsgTooFast, nil)
		return
	}

	res, err := b.orders.Click(ctx, tgID, firstName, 1)
	if errors.Is(err, service.ErrNoActiveOrder) {
		b.send(chatID, MsgNoActiveOrder, kbMainMenu())
		return
	}
	if err != nil {
		b.log.Error("click failed", "tg_id", tgID, "err", err)
		return
	}

	if res.Completed {
		b.send(chatID, fmt.Sprintf("Заказ завершён! Награда: %d ₽, XP: %d.", res.Reward, res.XPGained), kbMenuOnly())
		if res.LevelUp {
			b.send(chatID, fmt.Sprintf("Новый уровень: %d!", res.Level), nil)
		}
		b.notifyUnlocks(chatID, res.Unlocked)
		return
	}

	if res.Notify {
		b.send(chatID, fmt.Sprintf("Прогресс: %d/%d кликов (%d%%).", res.Progress, res.Required, res.Percent), nil)
	}
}

func (b *Bot) handleDaily(ctx context.Context, chatID, tgID int64, firstName string) {
	res, err := b.players.ClaimDailyBonus(ctx, tgID, firstName)
	if errors.Is(err, service.ErrDailyCooldown) {
		b.send(chatID, MsgDailyWait, nil)
		return
	}
	if err != nil {
		b.log.Error("daily bonus failed", "tg_id", tgID, "err", err)
		return
	}
	b.send(chatID, fmt.Sprintf("Начислен ежедневный бонус: %d ₽.", res.Amount), nil)
	b.notifyUnlocks(chatID, res.Unlocked)
}

func (b *Bot) handleCancelOrder(ctx context.Context, chatID, tgID int64, firstName string) {
	err := b.orders.Cancel(ctx, tgID, firstName)
	if errors.Is(err, service.ErrNoActiveOrder) {
		b.send(chatID, MsgNoActiveOrder, kbMainMenu())
		return
	}
	if err != nil {
		b.log.Error("cancel failed", "tg_id", tgID, "err", err)
		return
	}
	b.send(chatID, MsgOrderCanceled, kbMainMenu())
}

func (b *Bot) notifyUnlocks(chatID int64, defs []domain.AchievementDef) {
	for _, def := range defs {
		b.send(chatID, fmt.Sprintf("Достижение разблокировано: %s (+%d ₽)", def.Title, def.RewardRub), nil)
	}
}

func (b *Bot) turnPage(ctx context.Context, chatID, tgID int64, firstName string, delta int) {
	st := b.states.turn(chatID, delta)
	switch st.Screen {
	case screenOrders:
		b.renderOrders(ctx, chatID, tgID, firstName)
	case screenBoosts:
		b.renderBoosts(ctx, chatID, tgID, firstName)
	case screenItems:
		b.renderItems(ctx, chatID, tgID, firstName)
	case screenTeam:
		b.renderTeam(ctx, chatID, tgID, firstName)
	}
}

// handleChoice resolves a numeric selection against the current page.
func (b *Bot) handleChoice(ctx context.Context, chatID, tgID int64, firstName string, n int) {
	st := b.states.get(chatID)
	if n < 1 || n > len(st.Codes) {
		return
	}
	code := st.Codes[n-1]

	switch st.Screen {
	case screenOrders:
		order, err := b.orders.Assign(ctx, tgID, firstName, code)
		switch {
		case errors.Is(err, service.ErrAlreadyActiveOrder):
			b.send(chatID, MsgOrderAlready, kbMenuOnly())
		case errors.Is(err, service.ErrLevelTooLow):
			b.send(chatID, MsgLevelLow, nil)
		case err != nil:
			b.log.Error("assign failed", "tg_id", tgID, "err", err)
		default:
			def, _ := b.catalog.Order(order.OrderCode)
			b.send(chatID, fmt.Sprintf("Вы взяли заказ: %s. Удачи!", def.Title), kbMainMenu())
		}
	case screenBoosts:
		view, err := b.shop.PurchaseBoost(ctx, tgID, firstName, code)
		if b.purchaseFailed(chatID, err) {
			return
		}
		b.send(chatID, fmt.Sprintf("%s Уровень %d, следующий: %d ₽.", MsgPurchaseOK, view.Level, view.NextCost), nil)
		b.renderBoosts(ctx, chatID, tgID, firstName)
	case screenItems:
		_, err := b.shop.PurchaseItem(ctx, tgID, firstName, code)
		if b.purchaseFailed(chatID, err) {
			return
		}
		b.send(chatID, MsgPurchaseOK, nil)
		b.renderItems(ctx, chatID, tgID, firstName)
	case screenTeam:
		view, err := b.shop.UpgradeTeam(ctx, tgID, firstName, code)
		if b.purchaseFailed(chatID, err) {
			return
		}
		b.send(chatID, fmt.Sprintf("%s Уровень %d, следующее повышение: %d ₽.", MsgUpgradeOK, view.Level, view.NextCost), nil)
		b.renderTeam(ctx, chatID, tgID, firstName)
	case screenWardrobe:
		err := b.shop.EquipItem(ctx, tgID, firstName, code)
		if errors.Is(err, service.ErrNotOwned) {
			b.send(chatID, MsgEquipNoItem, nil)
			return
		}
		if err != nil {
			b.log.Error("equip failed", "tg_id", tgID, "err", err)
			return
		}
		b.send(chatID, MsgEquipOK, nil)
		b.renderWardrobe(ctx, chatID, tgID, firstName)
	}
}

func (b *Bot) purchaseFailed(chatID int64, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrInsufficientFunds):
		b.send(chatID, MsgNoFunds, nil)
	case errors.Is(err, service.ErrAlreadyOwned):
		b.send(chatID, "Уже куплено.", nil)
	case errors.Is(err, service.ErrLevelTooLow):
		b.send(chatID, MsgLevelLow, nil)
	default:
		b.log.Error("purchase failed", "err", err)
	}
	return true
}
