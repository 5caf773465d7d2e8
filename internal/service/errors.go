package service

import "errors"

// Ожидаемые бизнес-исходы. Транспорт переводит их в ответы игроку,
// всё остальное - аварийный отказ действия целиком.
var (
	ErrAlreadyActiveOrder = errors.New("player already has an active order")
	ErrNoActiveOrder      = errors.New("player has no active order")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAlreadyOwned       = errors.New("item already owned")
	ErrNotOwned           = errors.New("item not owned")
	ErrDailyCooldown      = errors.New("daily bonus already claimed")
	ErrLevelTooLow        = errors.New("player level too low")
	ErrUnknownCode        = errors.New("unknown catalog code")
)
