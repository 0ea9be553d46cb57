package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"activities-service/internal/model"
	"activities-service/internal/repository"
	"activities-service/internal/service"
	"activities-service/internal/service/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestActivityService_Signup(t *testing.T) {
	chess := model.Activity{
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu", "newstudent@mergington.edu"},
	}

	tests := []struct {
		name       string
		activity   string
		email      string
		setupMocks func(repo *mocks.ActivityRepository)
		wantMsg    string
		wantStatus int
	}{
		{
			name:     "Success",
			activity: "Chess Club",
			email:    "newstudent@mergington.edu",
			setupMocks: func(repo *mocks.ActivityRepository) {
				repo.On("AddParticipant", mock.Anything, "Chess Club", "newstudent@mergington.edu").Return(chess, nil)
			},
			wantMsg: "Signed up newstudent@mergington.edu for Chess Club",
		},
		{
			name:     "Fail: Activity not found",
			activity: "Fake Club",
			email:    "student@mergington.edu",
			setupMocks: func(repo *mocks.ActivityRepository) {
				repo.On("AddParticipant", mock.Anything, "Fake Club", "student@mergington.edu").
					Return(model.Activity{}, repository.ErrActivityNotFound)
			},
			wantMsg:    "Activity not found",
			wantStatus: http.StatusNotFound,
		},
		{
			name:     "Fail: Already signed up",
			activity: "Chess Club",
			email:    "michael@mergington.edu",
			setupMocks: func(repo *mocks.ActivityRepository) {
				repo.On("AddParticipant", mock.Anything, "Chess Club", "michael@mergington.edu").
					Return(model.Activity{}, repository.ErrAlreadySignedUp)
			},
			wantMsg:    "Student is already signed up",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:     "Fail: Activity full",
			activity: "Chess Club",
			email:    "late@mergington.edu",
			setupMocks: func(repo *mocks.ActivityRepository) {
				repo.On("AddParticipant", mock.Anything, "Chess Club", "late@mergington.edu").
					Return(model.Activity{}, repository.ErrActivityFull)
			},
			wantMsg:    "Activity is full",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:     "Fail: Unexpected repository error",
			activity: "Chess Club",
			email:    "x@mergington.edu",
			setupMocks: func(repo *mocks.ActivityRepository) {
				repo.On("AddParticipant", mock.Anything, "Chess Club", "x@mergington.edu").
					Return(model.Activity{}, errors.New("boom"))
			},
			wantMsg:    "failed to sign up",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Fail: Blank email never reaches repository",
			activity:   "Chess Club",
			email:      "   ",
			setupMocks: func(repo *mocks.ActivityRepository) {},
			wantMsg:    "email is required",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.ActivityRepository)
			tt.setupMocks(repo)

			svc := service.NewActivityService(repo, discard)
			msg, err := svc.Signup(context.Background(), tt.activity, tt.email)

			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.wantMsg, msg)
			} else {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				assert.Equal(t, tt.wantMsg, appErr.Message)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestActivityService_Unregister(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		setupMocks func(repo *mocks.ActivityRepository)
		want       service.UnregisterResult
		wantStatus int
	}{
		{
			name:  "Success: returns fresh snapshot",
			email: "michael@mergington.edu",
			setupMocks: func(repo *mocks.ActivityRepository) {
				repo.On("RemoveParticipant", mock.Anything, "Chess Club", "michael@mergington.edu").
					Return(model.Activity{MaxParticipants: 12, Participants: []string{"daniel@mergington.edu"}}, nil)
			},
			want: service.UnregisterResult{
				Message:         "Unregistered michael@mergington.edu from Chess Club",
				Participants:    []string{"daniel@mergington.edu"},
				MaxParticipants: 12,
			},
		},
		{
			name:  "Fail: Not signed up",
			email: "nothere@mergington.edu",
			setupMocks: func(repo *mocks.ActivityRepository) {
				repo.On("RemoveParticipant", mock.Anything, "Chess Club", "nothere@mergington.edu").
					Return(model.Activity{}, repository.ErrNotSignedUp)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "Fail: Activity not found",
			email: "michael@mergington.edu",
			setupMocks: func(repo *mocks.ActivityRepository) {
				repo.On("RemoveParticipant", mock.Anything, "Chess Club", "michael@mergington.edu").
					Return(model.Activity{}, repository.ErrActivityNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.ActivityRepository)
			tt.setupMocks(repo)

			svc := service.NewActivityService(repo, discard)
			got, err := svc.Unregister(context.Background(), "Chess Club", tt.email)

			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestActivityService_ListActivities(t *testing.T) {
	repo := new(mocks.ActivityRepository)
	repo.On("List", mock.Anything).Return(model.Catalog{{Name: "Chess Club"}}, nil).Once()
	repo.On("List", mock.Anything).Return(nil, errors.New("boom")).Once()

	svc := service.NewActivityService(repo, discard)

	got, err := svc.ListActivities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Chess Club"}, got.Names())

	_, err = svc.ListActivities(context.Background())
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, service.AsAppError(err).Status)

	repo.AssertExpectations(t)
}

func TestActivityService_RoundTripWithMemoryStore(t *testing.T) {
	ctx := context.Background()
	store, err := repository.NewMemoryStore(repository.DefaultSeed())
	require.NoError(t, err)
	svc := service.NewActivityService(store, discard)

	_, err = svc.Signup(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)

	res, err := svc.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{"daniel@mergington.edu", "newstudent@mergington.edu"}, res.Participants)

	_, err = svc.Signup(ctx, "Chess Club", "daniel@mergington.edu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already signed up")
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, service.IsNotFound(service.ErrNotFound("Activity not found")))
	assert.False(t, service.IsNotFound(service.ErrBadRequest("x")))
	assert.False(t, service.IsNotFound(errors.New("plain")))
	assert.False(t, service.IsNotFound(nil))
}
