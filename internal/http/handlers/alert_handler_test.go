package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bagami/notify/internal/apperr"
	"github.com/bagami/notify/internal/domain"
	"github.com/bagami/notify/internal/http/handlers"
)

type stubAlertUsecase struct {
	createFn func(ctx context.Context, a *domain.Alert) (int64, error)
	listFn   func(ctx context.Context, userID int64) ([]domain.Alert, error)
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (s *stubAlertUsecase) Create(ctx context.Context, a *domain.Alert) (int64, error) {
	return s.createFn(ctx, a)
}

func (s *stubAlertUsecase) List(ctx context.Context, userID int64) ([]domain.Alert, error) {
	return s.listFn(ctx, userID)
}

func (s *stubAlertUsecase) Delete(ctx context.Context, id, userID int64) error {
	return s.deleteFn(ctx, id, userID)
}

func TestAlertHandler_Create_OK(t *testing.T) {
	t.Parallel()

	uc := &stubAlertUsecase{
		createFn: func(ctx context.Context, a *domain.Alert) (int64, error) {
			require.Equal(t, int64(7), a.UserID)
			require.Equal(t, domain.AlertRequests, a.Type)
			require.NotNil(t, a.DestinationCountry)
			require.Equal(t, "Senegal", *a.DestinationCountry)
			require.Nil(t, a.DepartureCity)
			require.True(t, a.IsActive)
			return 5, nil
		},
	}
	h := handlers.NewAlertHandler(uc)

	body := `{"user_id":7,"alert_type":"requests","destination_country":"Senegal"}`
	req := httptest.NewRequest(http.MethodPost, "/alerts", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "/alerts/5", rr.Header().Get("Location"))
}

func TestAlertHandler_Create_Invalid(t *testing.T) {
	t.Parallel()

	uc := &stubAlertUsecase{
		createFn: func(ctx context.Context, a *domain.Alert) (int64, error) {
			return 0, apperr.ErrInvalid
		},
	}
	h := handlers.NewAlertHandler(uc)

	body := `{"user_id":7,"alert_type":"everything"}`
	req := httptest.NewRequest(http.MethodPost, "/alerts", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAlertHandler_List_OK(t *testing.T) {
	t.Parallel()

	uc := &stubAlertUsecase{
		listFn: func(ctx context.Context, userID int64) ([]domain.Alert, error) {
			require.Equal(t, int64(7), userID)
			return []domain.Alert{
				{ID: 1, UserID: 7, Type: domain.AlertAll, IsActive: true},
				{ID: 2, UserID: 7, Type: domain.AlertOffers, IsActive: true},
			}, nil
		},
	}
	h := handlers.NewAlertHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/alerts?user_id=7", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []struct {
		ID   int64  `json:"id"`
		Type string `json:"alert_type"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	require.Equal(t, "all", resp[0].Type)
	require.Equal(t, "offers", resp[1].Type)
}

func TestAlertHandler_List_MissingUserID(t *testing.T) {
	t.Parallel()

	h := handlers.NewAlertHandler(&stubAlertUsecase{
		listFn: func(ctx context.Context, userID int64) ([]domain.Alert, error) {
			require.FailNow(t, "usecase.List should not be called without user_id")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAlertHandler_Delete_OK(t *testing.T) {
	t.Parallel()

	uc := &stubAlertUsecase{
		deleteFn: func(ctx context.Context, id, userID int64) error {
			require.Equal(t, int64(3), id)
			require.Equal(t, int64(7), userID)
			return nil
		},
	}
	h := handlers.NewAlertHandler(uc)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/alerts/3?user_id=7", nil), "id", "3")
	rr := httptest.NewRecorder()

	h.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestAlertHandler_Delete_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubAlertUsecase{
		deleteFn: func(ctx context.Context, id, userID int64) error {
			return apperr.ErrNotFound
		},
	}
	h := handlers.NewAlertHandler(uc)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/alerts/3?user_id=7", nil), "id", "3")
	rr := httptest.NewRecorder()

	h.Delete(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAlertHandler_Delete_InternalError(t *testing.T) {
	t.Parallel()

	uc := &stubAlertUsecase{
		deleteFn: func(ctx context.Context, id, userID int64) error {
			return errors.New("db down")
		},
	}
	h := handlers.NewAlertHandler(uc)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/alerts/3?user_id=7", nil), "id", "3")
	rr := httptest.NewRecorder()

	h.Delete(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
