package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

func (a *Api) logError(_ *http.Request, err error) {
	a.logger.Errorw("server error", "err", err)
}

func (a *Api) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	data := map[string]interface{}{"error": message}

	if err := a.writeJSON(w, status, data, nil); err != nil {
		a.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	a.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (a *Api) clientErrorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	a.logger.Debugw("client error", "err", message)
	a.errorResponse(w, r, status, message)
}

func (a *Api) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	a.clientErrorResponse(w, r, http.StatusNotFound, message)
}

func (a *Api) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	a.clientErrorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (a *Api) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (a *Api) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

func (a *Api) unauthorizedResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusUnauthorized, err.Error())
}

func (a *Api) forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	a.clientErrorResponse(w, r, http.StatusForbidden, message)
}

var (
	conflictErrors = []error{
		model.ErrAlreadyExists,
		model.ErrEventAlreadyCancelled,
		model.ErrEventCancelled,
		model.ErrInvitationPending,
		model.ErrInvitationCompleted,
		model.ErrFriendshipRequestCompleted,
	}
	ruleErrors = []error{
		model.ErrEventHasPassed,
		model.ErrDateTimeInPast,
		model.ErrInviteOwner,
		model.ErrFriendshipRequestToSelf,
		model.ErrNotFriends,
	}
)

// serviceErrorResponse maps errors returned by business services.
func (a *Api) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
		return
	case errors.Is(err, model.ErrForbidden):
		a.forbiddenResponse(w, r, "you do not have access to this resource")
		return
	}

	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			a.clientErrorResponse(w, r, http.StatusConflict, target.Error())
			return
		}
	}

	for _, target := range ruleErrors {
		if errors.Is(err, target) {
			a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, target.Error())
			return
		}
	}

	a.serverErrorResponse(w, r, err)
}
