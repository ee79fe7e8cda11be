package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&services.ValidationError{Message: "price is required"}, http.StatusBadRequest},
		{services.ErrDuplicateEmail, http.StatusBadRequest},
		{services.ErrDuplicateRoomNumber, http.StatusBadRequest},
		{services.ErrRoomUnavailable, http.StatusBadRequest},
		{services.ErrRoomInUse, http.StatusBadRequest},
		{services.ErrInvoiceExists, http.StatusBadRequest},
		{fmt.Errorf("%w: CHECKED_OUT to CHECKED_IN", services.ErrIllegalTransition), http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: revoked", services.ErrInvalidToken), http.StatusUnauthorized},
		{services.ErrInactiveAccount, http.StatusForbidden},
		{services.ErrRoomNotFound, http.StatusNotFound},
		{services.ErrBookingNotFound, http.StatusNotFound},
		{services.ErrStaffNotFound, http.StatusNotFound},
		{services.ErrInvoiceNotFound, http.StatusNotFound},
		{services.ErrHotelNotFound, http.StatusNotFound},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, errors.New("dial tcp 10.0.0.5:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, msgServerError, body["message"])
}

func TestRespondErrorExposesDomainMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, services.ErrRoomNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"room not found"}`, w.Body.String())
}
