package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/storefront/settlements.api/service"
	"github.com/storefront/settlements.api/utils"
)

// statusFor maps a service response type onto the http status returned to the caller
func statusFor(responseType service.ResponseType) int {
	switch responseType {
	case service.InvalidData:
		return http.StatusBadRequest
	case service.Forbidden:
		return http.StatusForbidden
	case service.NotFound:
		return http.StatusNotFound
	case service.Conflict:
		return http.StatusConflict
	case service.RuleViolation:
		return http.StatusUnprocessableEntity
	case service.Retry:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeBadRequest logs the decode failure and writes a 400 with its message
func writeBadRequest(w http.ResponseWriter, req *http.Request, err error) {
	log.ErrorR(req, err)
	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
}

// writeServiceError logs a failed service call and writes the mapped status
// with the error message as the body
func writeServiceError(w http.ResponseWriter, req *http.Request, operation string, responseType service.ResponseType, err error) {
	status := statusFor(responseType)
	logData := log.Data{"response_type": responseType.String(), "status": status}

	if status == http.StatusInternalServerError {
		log.ErrorR(req, fmt.Errorf("error %s: [%w]", operation, err), logData)
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("there was a problem handling your request"), status)
		return
	}

	log.InfoR(req, fmt.Sprintf("unable to %s: %s", operation, err), logData)
	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), status)
}
