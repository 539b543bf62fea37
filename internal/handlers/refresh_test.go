package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelog/drivelog-api/internal/jwt"
	"github.com/drivelog/drivelog-api/internal/services"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRefresher(ctrl)
	handler := NewRefreshHandler(mockSvc)

	tests := []struct {
		name           string
		cookie         *http.Cookie
		setupMocks     func()
		expectedStatus int
	}{
		{
			name:   "successful refresh",
			cookie: &http.Cookie{Name: jwt.RefreshCookieName, Value: "refresh-token"},
			setupMocks: func() {
				mockSvc.EXPECT().Refresh(gomock.Any(), "refresh-token").Return("new-access", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing cookie",
			cookie:         nil,
			setupMocks:     func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			cookie: &http.Cookie{Name: jwt.RefreshCookieName, Value: "stale"},
			setupMocks: func() {
				mockSvc.EXPECT().Refresh(gomock.Any(), "stale").Return("", jwt.ErrTokenExpired)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			cookie: &http.Cookie{Name: jwt.RefreshCookieName, Value: "garbage"},
			setupMocks: func() {
				mockSvc.EXPECT().Refresh(gomock.Any(), "garbage").Return("", jwt.ErrTokenInvalid)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "token for deleted user",
			cookie: &http.Cookie{Name: jwt.RefreshCookieName, Value: "orphaned"},
			setupMocks: func() {
				mockSvc.EXPECT().Refresh(gomock.Any(), "orphaned").Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "inactive account",
			cookie: &http.Cookie{Name: jwt.RefreshCookieName, Value: "refresh-token"},
			setupMocks: func() {
				mockSvc.EXPECT().Refresh(gomock.Any(), "refresh-token").Return("", services.ErrUserInactive)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/auth/jwt/refresh", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRefreshHandler_ResponseBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRefresher(ctrl)
	mockSvc.EXPECT().Refresh(gomock.Any(), "refresh-token").Return("new-access", nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/jwt/refresh", nil)
	req.AddCookie(&http.Cookie{Name: jwt.RefreshCookieName, Value: "refresh-token"})
	rr := httptest.NewRecorder()

	NewRefreshHandler(mockSvc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "new-access", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}
