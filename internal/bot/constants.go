package bot

// Кнопки и тексты бота.
const (
	BtnClick       = "Клик"
	BtnOrders      = "Заказы"
	BtnShop        = "Магазин"
	BtnTeam        = "Команда"
	BtnWardrobe    = "Гардероб"
	BtnProfile     = "Профиль"
	BtnMenu        = "В меню"
	BtnPrev        = "Назад страница"
	BtnNext        = "Вперёд страница"
	BtnBoosts      = "Бусты"
	BtnEquipment   = "Экипировка"
	BtnDaily       = "Ежедневный бонус"
	BtnCancelOrder = "Отменить заказ"

	MsgWelcome       = "Добро пожаловать в «Дизайнер»! Вам начислено 200 ₽. Выберите действие:"
	MsgMenuHint      = "Главное меню:"
	MsgTooFast       = "Слишком быстро! Лимит кликов достигнут."
	MsgNoActiveOrder = "У вас нет активного заказа. Откройте раздел «Заказы»."
	MsgOrderAlready  = "У вас уже есть активный заказ."
	MsgOrderCanceled = "Заказ отменён. Прогресс сброшен."
	MsgNoFunds       = "Недостаточно средств."
	MsgPurchaseOK    = "Покупка успешна."
	MsgUpgradeOK     = "Повышение выполнено."
	MsgEquipOK       = "Экипировано."
	MsgEquipNoItem   = "Сначала купите предмет."
	MsgDailyWait     = "Бонус уже получен. Загляните позже."
	MsgLevelLow      = "Уровень слишком низкий."
	MsgNoOrders      = "Нет доступных заказов."
	MsgOrdersHeader  = "Доступные заказы (номер для выбора):"
	MsgShopHeader    = "Магазин — выберите раздел:"
	MsgTeamHeader    = "Команда (доход/мин, уровень, цена повышения):"
	MsgWardrobe      = "Гардероб — слоты и инвентарь:"
)

const pageSize = 5
