package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/rachmurali02/social-app/internal/handler/dto"
	"github.com/rachmurali02/social-app/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type SessionSvc interface {
	Create(ctx context.Context, callerID string, prefs *domain.Preferences) (*domain.Session, error)
	Get(ctx context.Context, callerID, id string) (*domain.Session, error)
	Update(ctx context.Context, callerID, id string, patch domain.SessionPatch) (*domain.Session, error)
	SubmitPreferences(ctx context.Context, callerID, id string, prefs domain.Preferences) (*domain.Session, error)
	DeclineOptions(ctx context.Context, callerID, id string) (*domain.Session, error)
	Select(ctx context.Context, callerID, id, optionName string) (*domain.Session, error)
	Confirm(ctx context.Context, callerID, id string) (*domain.Session, error)
}

type MeetupSvc interface {
	Create(ctx context.Context, callerID string, input domain.CreateMeetupInput) (*domain.Meetup, error)
	Respond(ctx context.Context, callerID, participantID string, response domain.Response) (*domain.Participant, error)
	List(ctx context.Context, callerID string, scope domain.MeetupScope) ([]*domain.Meetup, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	sessionService SessionSvc
	meetupService  MeetupSvc
	userService    UserSvc
}

func NewHandler(sessionService SessionSvc, meetupService MeetupSvc, userService UserSvc) *Handler {
	return &Handler{
		sessionService: sessionService,
		meetupService:  meetupService,
		userService:    userService,
	}
}

// Sessions

// CreateSession starts a negotiation. When the body carries preferences the
// first batch of options is fetched right away.
func (h *Handler) CreateSession(c *ginext.Context) {
	var req dto.CreateSessionRequest
	if !h.bindOptional(c, &req) {
		return
	}

	ctx, caller := c.Request.Context(), middleware.CallerID(c)

	var (
		session *domain.Session
		err     error
	)
	if req.Preferences != nil {
		session, err = h.sessionService.SubmitPreferences(ctx, caller, "", *req.Preferences)
	} else {
		session, err = h.sessionService.Create(ctx, caller, nil)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SessionEnvelope{SessionID: session.ID, Session: dto.ToSessionResponse(session)})
}

func (h *Handler) GetSession(c *ginext.Context) {
	h.getSession(c, c.Param("id"))
}

// GetSessionByQuery serves the polling read GET /api/session?sessionId=.
func (h *Handler) GetSessionByQuery(c *ginext.Context) {
	h.getSession(c, c.Query("sessionId"))
}

func (h *Handler) getSession(c *ginext.Context, id string) {
	session, err := h.sessionService.Get(c.Request.Context(), middleware.CallerID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionEnvelope{Session: dto.ToSessionResponse(session)})
}

func (h *Handler) UpdateSession(c *ginext.Context) {
	var req dto.SessionFields
	if !h.bind(c, &req) {
		return
	}

	session, err := h.sessionService.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req.Patch())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionEnvelope{Session: dto.ToSessionResponse(session)})
}

func (h *Handler) SubmitPreferences(c *ginext.Context) {
	var req domain.Preferences
	if !h.bind(c, &req) {
		return
	}

	session, err := h.sessionService.SubmitPreferences(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionEnvelope{Session: dto.ToSessionResponse(session)})
}

func (h *Handler) DeclineOptions(c *ginext.Context) {
	session, err := h.sessionService.DeclineOptions(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionEnvelope{Session: dto.ToSessionResponse(session)})
}

func (h *Handler) SelectOption(c *ginext.Context) {
	var req dto.SelectOptionRequest
	if !h.bind(c, &req) {
		return
	}

	session, err := h.sessionService.Select(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionEnvelope{Session: dto.ToSessionResponse(session)})
}

func (h *Handler) ConfirmSession(c *ginext.Context) {
	session, err := h.sessionService.Confirm(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionEnvelope{Session: dto.ToSessionResponse(session)})
}

// SessionAction serves the action-dispatched POST /api/session contract.
func (h *Handler) SessionAction(c *ginext.Context) {
	var req dto.SessionActionRequest
	if !h.bind(c, &req) {
		return
	}

	cmd, err := req.Command()
	if err != nil {
		h.handleError(c, err)
		return
	}

	ctx, caller := c.Request.Context(), middleware.CallerID(c)

	switch cmd := cmd.(type) {
	case dto.CreateSession:
		session, err := h.sessionService.Create(ctx, caller, cmd.Preferences)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.SessionEnvelope{SessionID: session.ID, Session: dto.ToSessionResponse(session)})

	case dto.UpdateSession:
		session, err := h.sessionService.Update(ctx, caller, cmd.SessionID, cmd.Patch)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SessionEnvelope{Session: dto.ToSessionResponse(session)})

	case dto.GetSession:
		h.getSession(c, cmd.SessionID)
	}
}

// Meetups

// MeetupAction serves the action-dispatched POST /api/meetups contract.
func (h *Handler) MeetupAction(c *ginext.Context) {
	var req dto.MeetupActionRequest
	if !h.bind(c, &req) {
		return
	}

	cmd, err := req.Command()
	if err != nil {
		h.handleError(c, err)
		return
	}

	switch cmd := cmd.(type) {
	case dto.CreateMeetup:
		meetup, err := h.meetupService.Create(c.Request.Context(), middleware.CallerID(c), cmd.Input)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MeetupEnvelope{Meetup: dto.ToMeetupResponse(meetup)})

	case dto.RespondToInvite:
		h.respond(c, cmd.ParticipantID, cmd.Response)
	}
}

func (h *Handler) ListMeetups(c *ginext.Context) {
	scope := domain.MeetupScope(c.Query("type"))

	meetups, err := h.meetupService.List(c.Request.Context(), middleware.CallerID(c), scope)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.MeetupListResponse{Meetups: make([]dto.MeetupResponse, 0, len(meetups))}
	for _, m := range meetups {
		resp.Meetups = append(resp.Meetups, dto.ToMeetupResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ConfirmInvite(c *ginext.Context) {
	h.respond(c, c.Param("id"), domain.ResponseConfirm)
}

func (h *Handler) DeclineInvite(c *ginext.Context) {
	h.respond(c, c.Param("id"), domain.ResponseDecline)
}

func (h *Handler) respond(c *ginext.Context, participantID string, response domain.Response) {
	participant, err := h.meetupService.Respond(c.Request.Context(), middleware.CallerID(c), participantID, response)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ParticipantEnvelope{Participant: dto.ToParticipantResponse(participant)})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if !h.bind(c, &req) {
		return
	}

	input := domain.CreateUserInput{
		ID:             middleware.CallerID(c),
		Name:           req.Name,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) bind(c *ginext.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.badRequest(c, err)
		return false
	}
	return true
}

// bindOptional accepts an empty body.
func (h *Handler) bindOptional(c *ginext.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(c, err)
		return false
	}
	return true
}

func (h *Handler) badRequest(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Kind:  string(domain.KindValidation),
		Error: "invalid request body: " + err.Error(),
	})
}

var kindStatus = map[domain.Kind]int{
	domain.KindUnauthorized:      http.StatusUnauthorized,
	domain.KindNotFound:          http.StatusNotFound,
	domain.KindMissingParameter:  http.StatusBadRequest,
	domain.KindInvalidSelection:  http.StatusBadRequest,
	domain.KindValidation:        http.StatusBadRequest,
	domain.KindForbidden:         http.StatusForbidden,
	domain.KindInvalidTransition: http.StatusConflict,
	domain.KindAlreadyResponded:  http.StatusConflict,
	domain.KindConflict:          http.StatusConflict,
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	kind := domain.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Kind:  string(domain.KindInternal),
			Error: "internal server error",
		})
		return
	}

	c.JSON(status, dto.ErrorResponse{Kind: string(kind), Error: err.Error()})
}
