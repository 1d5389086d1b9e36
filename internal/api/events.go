package api

import (
	"net/http"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		Kind        string    `json:"kind" validate:"required,oneof=personal group"`
		Name        string    `json:"name"`
		Category    int       `json:"category" validate:"category"`
		DateTimeUTC time.Time `json:"date_time_utc" validate:"required"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		a.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	if errs := validateName(req.Name); errs != nil {
		a.failedValidationResponse(w, r, errs)
		return
	}

	info := &model.EventCreate{
		UserID:      id,
		Name:        req.Name,
		Category:    model.EventCategory(req.Category),
		DateTimeUTC: req.DateTimeUTC.UTC(),
	}

	var event *model.Event
	if req.Kind == model.EventKindGroup.String() {
		e, err := a.events.CreateGroupEvent(r.Context(), info)
		if err != nil {
			a.serviceErrorResponse(w, r, err)
			return
		}
		event = &e.Event
	} else {
		e, err := a.events.CreatePersonalEvent(r.Context(), info)
		if err != nil {
			a.serviceErrorResponse(w, r, err)
			return
		}
		event = &e.Event
	}

	resp, _ := mapToEventResp(event)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	events, err := a.events.GetUserEvents(r.Context(), id)
	if err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	resp, _ := mapSlice(events, mapToEventResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, eventID, ok := a.userAndEventIDs(w, r)
	if !ok {
		return
	}

	event, err := a.events.GetEvent(r.Context(), id, eventID)
	if err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(event)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) cancelEventHandler(w http.ResponseWriter, r *http.Request) {
	id, eventID, ok := a.userAndEventIDs(w, r)
	if !ok {
		return
	}

	if err := a.events.CancelEvent(r.Context(), id, eventID); err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) changeEventNameHandler(w http.ResponseWriter, r *http.Request) {
	id, eventID, ok := a.userAndEventIDs(w, r)
	if !ok {
		return
	}

	req := &struct {
		Name string `json:"name"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if errs := validateName(req.Name); errs != nil {
		a.failedValidationResponse(w, r, errs)
		return
	}

	if err := a.events.ChangeEventName(r.Context(), id, eventID, req.Name); err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) changeEventDateHandler(w http.ResponseWriter, r *http.Request) {
	id, eventID, ok := a.userAndEventIDs(w, r)
	if !ok {
		return
	}

	req := &struct {
		DateTimeUTC time.Time `json:"date_time_utc" validate:"required"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		a.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	if err := a.events.ChangeEventDateAndTime(r.Context(), id, eventID, req.DateTimeUTC.UTC()); err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) inviteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, eventID, ok := a.userAndEventIDs(w, r)
	if !ok {
		return
	}

	req := &struct {
		UserID uuid.UUID `json:"user_id" validate:"required"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		a.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	invitation, err := a.events.InviteUser(r.Context(), id, eventID, req.UserID)
	if err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	resp := &invitationResp{
		ID:      invitation.ID,
		EventID: invitation.EventID,
		UserID:  invitation.UserID,
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) userAndEventIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	id, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return uuid.Nil, uuid.Nil, false
	}

	eventID, err := uuidParam(r, "eventID")
	if err != nil {
		a.notFoundResponse(w, r)
		return uuid.Nil, uuid.Nil, false
	}

	return id, eventID, true
}
