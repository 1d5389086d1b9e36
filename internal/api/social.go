package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

func (a *Api) acceptInvitationHandler(w http.ResponseWriter, r *http.Request) {
	a.completeHandler(w, r, "invitationID", a.invitations.Accept)
}

func (a *Api) rejectInvitationHandler(w http.ResponseWriter, r *http.Request) {
	a.completeHandler(w, r, "invitationID", a.invitations.Reject)
}

func (a *Api) acceptFriendshipRequestHandler(w http.ResponseWriter, r *http.Request) {
	a.completeHandler(w, r, "requestID", a.friendships.Accept)
}

func (a *Api) rejectFriendshipRequestHandler(w http.ResponseWriter, r *http.Request) {
	a.completeHandler(w, r, "requestID", a.friendships.Reject)
}

func (a *Api) removeFriendHandler(w http.ResponseWriter, r *http.Request) {
	a.completeHandler(w, r, "friendID", a.friendships.RemoveFriend)
}

// completeHandler runs a command taking the current user and an id from the
// path.
func (a *Api) completeHandler(
	w http.ResponseWriter,
	r *http.Request,
	param string,
	command func(ctx context.Context, userID, id uuid.UUID) error,
) {
	id, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	targetID, err := uuidParam(r, param)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := command(r.Context(), id, targetID); err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) sendFriendshipRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		FriendID uuid.UUID `json:"friend_id" validate:"required"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		a.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	request, err := a.friendships.SendRequest(r.Context(), id, req.FriendID)
	if err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	resp := &friendshipRequestResp{
		ID:       request.ID,
		UserID:   request.UserID,
		FriendID: request.FriendID,
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getFriendsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	friends, err := a.friendships.GetFriends(r.Context(), id)
	if err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	if friends == nil {
		friends = []uuid.UUID{}
	}

	if err := a.writeJSON(w, http.StatusOK, map[string]interface{}{"friend_ids": friends}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
