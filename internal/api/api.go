package api

import (
	"context"
	"net/http"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	jwts jwtManager

	db    database.PGX
	users userRepository

	events      eventsService
	invitations invitationsService
	friendships friendshipsService
}

type jwtManager interface {
	GetIdFromToken(token string) (uuid.UUID, error)
}

type userRepository interface {
	GetUserByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.User, error)
}

type eventsService interface {
	CreatePersonalEvent(ctx context.Context, info *model.EventCreate) (*model.PersonalEvent, error)
	CreateGroupEvent(ctx context.Context, info *model.EventCreate) (*model.GroupEvent, error)
	GetEvent(ctx context.Context, userID, id uuid.UUID) (*model.Event, error)
	GetUserEvents(ctx context.Context, userID uuid.UUID) ([]*model.Event, error)
	CancelEvent(ctx context.Context, userID, id uuid.UUID) error
	ChangeEventName(ctx context.Context, userID, id uuid.UUID, name string) error
	ChangeEventDateAndTime(ctx context.Context, userID, id uuid.UUID, dateTimeUTC time.Time) error
	InviteUser(ctx context.Context, ownerID, eventID, userID uuid.UUID) (*model.Invitation, error)
}

type invitationsService interface {
	Accept(ctx context.Context, userID, id uuid.UUID) error
	Reject(ctx context.Context, userID, id uuid.UUID) error
}

type friendshipsService interface {
	SendRequest(ctx context.Context, userID, friendID uuid.UUID) (*model.FriendshipRequest, error)
	Accept(ctx context.Context, userID, id uuid.UUID) error
	Reject(ctx context.Context, userID, id uuid.UUID) error
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error
	GetFriends(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

func NewApi(
	logger *zap.SugaredLogger,
	jwts jwtManager,
	db database.PGX,
	users userRepository,
	events eventsService,
	invitations invitationsService,
	friendships friendshipsService,
) *Api {
	a := &Api{
		logger:      logger,
		jwts:        jwts,
		db:          db,
		users:       users,
		events:      events,
		invitations: invitations,
		friendships: friendships,
	}
	a.setupHandler()

	return a
}

func (a *Api) setupHandler() {
	logRequests := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(logRequests, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.userCtx).Get("/user", a.getUserHandler)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", a.getEventsHandler)
			r.Post("/", a.createEventHandler)

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", a.getEventHandler)
				r.Post("/cancel", a.cancelEventHandler)
				r.Put("/name", a.changeEventNameHandler)
				r.Put("/date", a.changeEventDateHandler)
				r.Post("/invitations", a.inviteUserHandler)
			})
		})

		r.Route("/invitations/{invitationID}", func(r chi.Router) {
			r.Post("/accept", a.acceptInvitationHandler)
			r.Post("/reject", a.rejectInvitationHandler)
		})

		r.Route("/friends", func(r chi.Router) {
			r.Get("/", a.getFriendsHandler)
			r.Delete("/{friendID}", a.removeFriendHandler)
		})

		r.Route("/friendship-requests", func(r chi.Router) {
			r.Post("/", a.sendFriendshipRequestHandler)
			r.Post("/{requestID}/accept", a.acceptFriendshipRequestHandler)
			r.Post("/{requestID}/reject", a.rejectFriendshipRequestHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
