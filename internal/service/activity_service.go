// Package service содержит бизнес-логику записи на внеклассные активности.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"activities-service/internal/model"
	"activities-service/internal/observability"
	"activities-service/internal/repository"
)

// Сообщения об ошибках. Клиенты классифицируют ответы по подстрокам
// "not found", "already signed up", "not signed up", поэтому формулировки менять нельзя.
const (
	msgActivityNotFound = "Activity not found"
	msgAlreadySignedUp  = "Student is already signed up"
	msgNotSignedUp      = "Student is not signed up for this activity"
	msgActivityFull     = "Activity is full"
)

// ActivityRepository описывает контракт хранилища активностей для бизнес-слоя.
type ActivityRepository interface {
	List(ctx context.Context) (model.Catalog, error)
	AddParticipant(ctx context.Context, name, email string) (model.Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (model.Activity, error)
}

// UnregisterResult — результат отписки: сообщение и свежий снимок списка участников.
type UnregisterResult struct {
	Message         string
	Participants    []string
	MaxParticipants int
}

// ActivityService реализует операции просмотра, записи и отписки.
type ActivityService struct {
	repo ActivityRepository
	log  *slog.Logger
}

// NewActivityService создаёт сервис поверх переданного хранилища.
func NewActivityService(repo ActivityRepository, log *slog.Logger) *ActivityService {
	return &ActivityService{repo: repo, log: log}
}

// ListActivities возвращает все активности в порядке их добавления.
func (s *ActivityService) ListActivities(ctx context.Context) (model.Catalog, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list activities", err)
	}
	return catalog, nil
}

// Signup записывает email на активность и возвращает подтверждение.
// Вместимость проверяется только если хранилище создано с WithCapacityEnforcement.
func (s *ActivityService) Signup(ctx context.Context, activity, email string) (string, error) {
	if err := requireArgs(activity, email); err != nil {
		return "", err
	}

	a, err := s.repo.AddParticipant(ctx, activity, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			observability.RecordSignup(activity, observability.ResultNotFound)
			return "", ErrNotFound(msgActivityNotFound)
		case errors.Is(err, repository.ErrAlreadySignedUp):
			observability.RecordSignup(activity, observability.ResultDuplicate)
			return "", ErrBadRequest(msgAlreadySignedUp)
		case errors.Is(err, repository.ErrActivityFull):
			observability.RecordSignup(activity, observability.ResultFull)
			return "", ErrBadRequest(msgActivityFull)
		}
		observability.RecordSignup(activity, observability.ResultError)
		return "", ErrInternal("failed to sign up", err)
	}

	observability.RecordSignup(activity, observability.ResultOK)
	observability.SetParticipants(activity, len(a.Participants))
	s.log.Info("participant signed up",
		slog.String("activity", activity),
		slog.String("email", email),
		slog.Int("participants", len(a.Participants)),
	)

	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister удаляет email из активности и возвращает обновлённый список участников.
func (s *ActivityService) Unregister(ctx context.Context, activity, email string) (UnregisterResult, error) {
	if err := requireArgs(activity, email); err != nil {
		return UnregisterResult{}, err
	}

	a, err := s.repo.RemoveParticipant(ctx, activity, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			observability.RecordUnregister(activity, observability.ResultNotFound)
			return UnregisterResult{}, ErrNotFound(msgActivityNotFound)
		case errors.Is(err, repository.ErrNotSignedUp):
			observability.RecordUnregister(activity, observability.ResultNotSignedUp)
			return UnregisterResult{}, ErrBadRequest(msgNotSignedUp)
		}
		observability.RecordUnregister(activity, observability.ResultError)
		return UnregisterResult{}, ErrInternal("failed to unregister", err)
	}

	observability.RecordUnregister(activity, observability.ResultOK)
	observability.SetParticipants(activity, len(a.Participants))
	s.log.Info("participant unregistered",
		slog.String("activity", activity),
		slog.String("email", email),
		slog.Int("participants", len(a.Participants)),
	)

	return UnregisterResult{
		Message:         fmt.Sprintf("Unregistered %s from %s", email, activity),
		Participants:    a.Participants,
		MaxParticipants: a.MaxParticipants,
	}, nil
}

func requireArgs(activity, email string) error {
	if activity == "" {
		return ErrBadRequest("activity name is required")
	}
	if strings.TrimSpace(email) == "" {
		return ErrBadRequest("email is required")
	}
	return nil
}
