package bot

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func kbMainMenu() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnClick),
			tgbotapi.NewKeyboardButton(BtnOrders),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnShop),
			tgbotapi.NewKeyboardButton(BtnTeam),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnWardrobe),
			tgbotapi.NewKeyboardButton(BtnProfile),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func kbMenuOnly() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(BtnMenu)),
	)
	kb.ResizeKeyboard = true
	return kb
}

// kbNumericPage - цифры для выбора плюс навигация по страницам.
func kbNumericPage(count int, showPrev, showNext bool) tgbotapi.ReplyKeyboardMarkup {
	var numbers []tgbotapi.KeyboardButton
	for i := 1; i <= count; i++ {
		numbers = append(numbers, tgbotapi.NewKeyboardButton(strconv.Itoa(i)))
	}

	rows := [][]tgbotapi.KeyboardButton{numbers}
	var nav []tgbotapi.KeyboardButton
	if showPrev {
		nav = append(nav, tgbotapi.NewKeyboardButton(BtnPrev))
	}
	if showNext {
		nav = append(nav, tgbotapi.NewKeyboardButton(BtnNext))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(BtnMenu)})

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

func kbShopMenu() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnBoosts),
			tgbotapi.NewKeyboardButton(BtnEquipment),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(BtnMenu)),
	)
	kb.ResizeKeyboard = true
	return kb
}

func kbProfileMenu(hasActiveOrder bool) tgbotapi.ReplyKeyboardMarkup {
	row := []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(BtnDaily)}
	if hasActiveOrder {
		row = append(row, tgbotapi.NewKeyboardButton(BtnCancelOrder))
	}
	kb := tgbotapi.NewReplyKeyboard(
		row,
		[]tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(BtnMenu)},
	)
	kb.ResizeKeyboard = true
	return kb
}
