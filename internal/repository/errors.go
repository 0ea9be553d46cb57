package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если активность с таким именем не существует.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp возвращается при повторной записи того же email.
	ErrAlreadySignedUp = errors.New("participant already signed up")

	// ErrNotSignedUp возвращается при попытке отписать email, которого нет в списке.
	ErrNotSignedUp = errors.New("participant not signed up")

	// ErrActivityFull возвращается, если включено ограничение вместимости и мест нет.
	ErrActivityFull = errors.New("activity is full")

	// ErrDuplicateActivity возвращается, если в начальных данных два раза встречается одно имя.
	ErrDuplicateActivity = errors.New("duplicate activity name")

	// ErrInvalidSeed возвращается при некорректной записи в начальных данных.
	ErrInvalidSeed = errors.New("invalid seed entry")
)
