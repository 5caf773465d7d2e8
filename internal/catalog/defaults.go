package catalog

import "github.com/89089599151/designer-clicker-bot/internal/domain"

// Default returns the built-in catalog used when CATALOG_PATH is not set.
func Default() *Registry {
	r, err := build(defaultCatalog())
	if err != nil {
		// дефолтный каталог обязан быть валидным
		panic(err)
	}
	return r
}

func defaultCatalog() catalogFile {
	return catalogFile{
		Orders: []domain.OrderTemplate{
			{Code: "card_freelancer", Title: "Визитка для фрилансера", BaseClicks: 100, MinLevel: 1},
			{Code: "vk_cover", Title: "Обложка для VK", BaseClicks: 180, MinLevel: 1},
			{Code: "cafe_logo", Title: "Логотип для кафе", BaseClicks: 300, MinLevel: 2},
			{Code: "landing_one", Title: "Лендинг (1 экран)", BaseClicks: 600, MinLevel: 3},
			{Code: "logo_redesign", Title: "Редизайн логотипа", BaseClicks: 800, MinLevel: 4},
			{Code: "brandbook_mini", Title: "Брендбук (мини)", BaseClicks: 1200, MinLevel: 5},
		},
		Boosts: []domain.Boost{
			{Code: "cp_plus_1", Name: "Клик +1", Type: domain.BoostCP, BaseCost: 100, Growth: 1.25, StepValue: 1},
			{Code: "reward_mul_10", Name: "Награда +10%", Type: domain.BoostReward, BaseCost: 300, Growth: 1.18, StepValue: 0.10},
			{Code: "passive_mul_10", Name: "Пассивный доход +10%", Type: domain.BoostPassive, BaseCost: 400, Growth: 1.18, StepValue: 0.10},
		},
		Items: []domain.Item{
			{Code: "laptop_t1", Name: "Ноутбук T1", Slot: "laptop", Tier: 1, BonusType: domain.BonusCPPct, BonusValue: 0.05, Price: 250, MinLevel: 1},
			{Code: "laptop_t2", Name: "Ноутбук T2", Slot: "laptop", Tier: 2, BonusType: domain.BonusCPPct, BonusValue: 0.10, Price: 500, MinLevel: 2},
			{Code: "laptop_t3", Name: "Ноутбук T3", Slot: "laptop", Tier: 3, BonusType: domain.BonusCPPct, BonusValue: 0.15, Price: 900, MinLevel: 3},
			{Code: "phone_t1", Name: "Смартфон T1", Slot: "phone", Tier: 1, BonusType: domain.BonusPassivePct, BonusValue: 0.03, Price: 200, MinLevel: 1},
			{Code: "phone_t2", Name: "Смартфон T2", Slot: "phone", Tier: 2, BonusType: domain.BonusPassivePct, BonusValue: 0.06, Price: 400, MinLevel: 2},
			{Code: "phone_t3", Name: "Смартфон T3", Slot: "phone", Tier: 3, BonusType: domain.BonusPassivePct, BonusValue: 0.10, Price: 700, MinLevel: 3},
			{Code: "tablet_t1", Name: "Планшет T1", Slot: "tablet", Tier: 1, BonusType: domain.BonusReqClicksPct, BonusValue: 0.05, Price: 220, MinLevel: 1},
			{Code: "tablet_t2", Name: "Планшет T2", Slot: "tablet", Tier: 2, BonusType: domain.BonusReqClicksPct, BonusValue: 0.09, Price: 480, MinLevel: 2},
			{Code: "monitor_t1", Name: "Монитор T1", Slot: "monitor", Tier: 1, BonusType: domain.BonusRewardPct, BonusValue: 0.05, Price: 260, MinLevel: 1},
			{Code: "monitor_t2", Name: "Монитор T2", Slot: "monitor", Tier: 2, BonusType: domain.BonusRewardPct, BonusValue: 0.09, Price: 520, MinLevel: 2},
			{Code: "chair_t1", Name: "Стул T1", Slot: "chair", Tier: 1, BonusType: domain.BonusRateLimitPlus, BonusValue: 1, Price: 300, MinLevel: 1},
			{Code: "chair_t2", Name: "Стул T2", Slot: "chair", Tier: 2, BonusType: domain.BonusRateLimitPlus, BonusValue: 2, Price: 600, MinLevel: 2},
		},
		Team: []domain.TeamMember{
			{Code: "junior", Name: "Junior Designer", BaseIncomePerMin: 4, BaseCost: 100},
			{Code: "middle", Name: "Middle Designer", BaseIncomePerMin: 10, BaseCost: 300},
			{Code: "senior", Name: "Senior Designer", BaseIncomePerMin: 22, BaseCost: 800},
			{Code: "pm", Name: "Project Manager", BaseIncomePerMin: 35, BaseCost: 1200},
		},
		Achievements: []domain.AchievementDef{
			{Code: "clicks_100", Title: "Первые мозоли", Category: domain.TriggerClicks, Threshold: 100, RewardRub: 50},
			{Code: "clicks_1000", Title: "Кликер со стажем", Category: domain.TriggerClicks, Threshold: 1000, RewardRub: 200},
			{Code: "clicks_10000", Title: "Стальной палец", Category: domain.TriggerClicks, Threshold: 10000, RewardRub: 1000},
			{Code: "orders_1", Title: "Первый заказ", Category: domain.TriggerOrders, Threshold: 1, RewardRub: 50},
			{Code: "orders_10", Title: "Постоянные клиенты", Category: domain.TriggerOrders, Threshold: 10, RewardRub: 300},
			{Code: "orders_50", Title: "Студия одного человека", Category: domain.TriggerOrders, Threshold: 50, RewardRub: 1500},
			{Code: "balance_1000", Title: "Первая тысяча", Category: domain.TriggerBalance, Threshold: 1000, RewardRub: 100},
			{Code: "balance_10000", Title: "Подушка безопасности", Category: domain.TriggerBalance, Threshold: 10000, RewardRub: 500},
			{Code: "level_5", Title: "Уверенный мидл", Category: domain.TriggerLevel, Threshold: 5, RewardRub: 200},
			{Code: "level_10", Title: "Сеньор", Category: domain.TriggerLevel, Threshold: 10, RewardRub: 1000},
			{Code: "passive_1000", Title: "Деньги во сне", Category: domain.TriggerPassive, Threshold: 1000, RewardRub: 300},
			{Code: "daily_7", Title: "Неделя без пропусков", Category: domain.TriggerDaily, Threshold: 7, RewardRub: 200},
		},
	}
}
