package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// init_data старше часа не принимаем - защита от повторного входа
	// с перехваченной строкой.
	initDataMaxAge = 3600
	// допустимый уход часов клиента вперёд
	initDataClockSkew = 300
)

// ValidateTelegramInitData проверяет подпись init_data мини-приложения и
// свежесть auth_date. Возвращает разобранные параметры без поля hash.
func ValidateTelegramInitData(initData, botToken string) (url.Values, bool) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, false
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, false
	}
	values.Del("hash")

	if !initDataSignatureOK(values, hash, botToken) {
		return nil, false
	}
	if !initDataFresh(values.Get("auth_date")) {
		return nil, false
	}
	return values, true
}

// initDataSignatureOK: HMAC-SHA256 от отсортированных пар k=v, разделённых
// переводом строки; ключ - SHA256 от токена бота.
func initDataSignatureOK(values url.Values, hash, botToken string) bool {
	pairs := make([]string, 0, len(values))
	for k, v := range values {
		pairs = append(pairs, k+"="+strings.Join(v, ""))
	}
	sort.Strings(pairs)

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(pairs, "\n")))

	want, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}
	return hmac.Equal(mac.Sum(nil), want)
}

func initDataFresh(authDate string) bool {
	ts, err := strconv.ParseInt(authDate, 10, 64)
	if err != nil {
		return false
	}
	now := time.Now().Unix()
	return now-ts <= initDataMaxAge && ts-now <= initDataClockSkew
}
