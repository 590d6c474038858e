package handlers

import (
	"errors"
	"net/http"

	eventRepo "meetslot/database/repository/event"
	"meetslot/services/meeting"
	"meetslot/utils"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, meeting.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, eventRepo.ErrEventNotFound):
		return http.StatusNotFound
	default:
		return utils.StatusFor(err)
	}
}
