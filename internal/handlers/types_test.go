package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/transaction-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactionIDsByTypeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ids in creation order", func(t *testing.T) {
		m := NewMockTransactionTypeLister(ctrl)
		m.EXPECT().ListIDsByType(gomock.Any(), "conference").Return([]int64{12341, 12342}, nil)

		rr := httptest.NewRecorder()
		NewListTransactionIDsByTypeHandler(m)(rr, newRequest(http.MethodGet, "/transactionservice/types/conference", "", map[string]string{"type": "conference"}))

		assert.Equal(t, http.StatusOK, rr.Code)
		var ids []int64
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ids))
		assert.Equal(t, []int64{12341, 12342}, ids)
	})

	t.Run("unknown type is an empty list", func(t *testing.T) {
		m := NewMockTransactionTypeLister(ctrl)
		m.EXPECT().ListIDsByType(gomock.Any(), "nothing").Return(nil, nil)

		rr := httptest.NewRecorder()
		NewListTransactionIDsByTypeHandler(m)(rr, newRequest(http.MethodGet, "/transactionservice/types/nothing", "", map[string]string{"type": "nothing"}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("empty type", func(t *testing.T) {
		m := NewMockTransactionTypeLister(ctrl)

		rr := httptest.NewRecorder()
		NewListTransactionIDsByTypeHandler(m)(rr, newRequest(http.MethodGet, "/transactionservice/types/", "", map[string]string{"type": ""}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, map[string]any{"error": "Not found"}, decodeBody(t, rr))
	})

	t.Run("internal server error", func(t *testing.T) {
		m := NewMockTransactionTypeLister(ctrl)
		m.EXPECT().ListIDsByType(gomock.Any(), "x").Return(nil, errors.New("boom"))

		rr := httptest.NewRecorder()
		NewListTransactionIDsByTypeHandler(m)(rr, newRequest(http.MethodGet, "/transactionservice/types/x", "", map[string]string{"type": "x"}))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestListTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parentID := int64(10)
	m := NewMockTransactionLister(ctrl)
	m.EXPECT().List(gomock.Any()).Return([]models.Transaction{
		{ID: 10, Amount: 5000, Type: "cars"},
		{ID: 11, Amount: 10000, Type: "shopping", ParentID: &parentID},
	}, nil)

	rr := httptest.NewRecorder()
	NewListTransactionsHandler(m)(rr, newRequest(http.MethodGet, "/transactionservice/transactions", "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`[{"id":10,"amount":5000,"type":"cars"},{"id":11,"amount":10000,"type":"shopping","parent_id":10}]`,
		rr.Body.String())
}

func TestNotFoundAndMethodNotAllowedHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	NewNotFoundHandler()(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, map[string]any{"error": "Not found"}, decodeBody(t, rr))

	rr = httptest.NewRecorder()
	NewMethodNotAllowedHandler()(rr, httptest.NewRequest(http.MethodDelete, "/transactionservice/transaction/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, map[string]any{"error": "Method not allowed"}, decodeBody(t, rr))
}
