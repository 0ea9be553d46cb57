// Package http реализует HTTP-обработчики и DTO поверх сервиса активностей.
package http

type errorResponse struct {
	Detail string `json:"detail"`
}

type signupResponse struct {
	Message string `json:"message"`
}

type unregisterResponse struct {
	Message         string   `json:"message"`
	Participants    []string `json:"participants"`
	MaxParticipants int      `json:"max_participants"`
}

// participantQuery собирает параметры записи/отписки из пути и query-строки.
type participantQuery struct {
	Activity string `validate:"required"`
	Email    string `validate:"required,notblank"`
}
