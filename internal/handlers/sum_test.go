package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/transaction-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSumTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockTransactionSummer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			id:   "12342",
			mockSetup: func(m *MockTransactionSummer) {
				m.EXPECT().Sum(gomock.Any(), int64(12342)).Return(2000.0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"sum": 2000.0},
		},
		{
			name: "unknown id",
			id:   "1",
			mockSetup: func(m *MockTransactionSummer) {
				m.EXPECT().Sum(gomock.Any(), int64(1)).Return(0.0, services.ErrInvalidParent)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid parent id"},
		},
		{
			name:         "non integer id",
			id:           "one",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Value Error: parent_id"},
		},
		{
			name:         "empty id",
			id:           "",
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "Not found"},
		},
		{
			name: "internal server error",
			id:   "2",
			mockSetup: func(m *MockTransactionSummer) {
				m.EXPECT().Sum(gomock.Any(), int64(2)).Return(0.0, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTransactionSummer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSumTransactionHandler(mockSvc)
			req := newRequest(http.MethodGet, "/transactionservice/sum/"+tt.id, "", map[string]string{"id": tt.id})
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}
