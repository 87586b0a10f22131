package mesto

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mestoapp/mesto-go/auth"
	"go.uber.org/zap"
)

const sessionCookie = "jwt"

// Server holds the aggregates and the boundary concerns: decoding,
// response encoding and error normalization.
type Server struct {
	users  UserService
	cards  CardService
	tokens *auth.TokenIssuer
	logger *zap.Logger
}

func NewServer(users UserService, cards CardService, tokens *auth.TokenIssuer, logger *zap.Logger) *Server {
	return &Server{users: users, cards: cards, tokens: tokens, logger: logger}
}

type errorResponse struct {
	Message          string   `json:"message"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type signinResponse struct {
	Message string  `json:"message"`
	User    Profile `json:"user"`
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	profile, err := s.users.Register(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	token, profile, err := s.users.Login(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.tokens.TTL().Seconds()),
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, signinResponse{Message: "login successful", User: profile})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.users.ListAll()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// getUser serves both /users/me and /users/:userId: httprouter cannot
// register a static "me" segment next to the :userId wildcard, so the
// self lookup is dispatched on the parameter value.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	userID := httprouter.ParamsFromContext(r.Context()).ByName("userId")
	if userID == "me" {
		userID = callerID(r)
	}

	profile, err := s.users.GetByID(userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	profile, err := s.users.UpdateProfile(callerID(r), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) updateAvatar(w http.ResponseWriter, r *http.Request) {
	var req updateAvatarRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	profile, err := s.users.UpdateAvatar(callerID(r), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) listCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.cards.List()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) createCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	card, err := s.cards.Create(callerID(r), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (s *Server) deleteCard(w http.ResponseWriter, r *http.Request) {
	cardID := httprouter.ParamsFromContext(r.Context()).ByName("cardId")

	if err := s.cards.Delete(callerID(r), cardID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "card deleted"})
}

func (s *Server) likeCard(w http.ResponseWriter, r *http.Request) {
	s.mutateLikes(w, r, s.cards.Like)
}

func (s *Server) unlikeCard(w http.ResponseWriter, r *http.Request) {
	s.mutateLikes(w, r, s.cards.Unlike)
}

func (s *Server) mutateLikes(w http.ResponseWriter, r *http.Request, op func(callerID, cardID string) (CardView, error)) {
	cardID := httprouter.ParamsFromContext(r.Context()).ByName("cardId")

	card, err := op(callerID(r), cardID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// notFound answers every unmatched route with the same shape as a
// missing resource, so clients cannot tell a bad route from a bad id.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return NewValidationError("malformed request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the single normalization point: every failure becomes
// {message, validationErrors?} with the status of its kind. Internal
// failures are logged in full but reported generically.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := KindOf(err)
	status := statusOf(kind)

	resp := errorResponse{Message: "internal server error"}
	var e *Error
	if errors.As(err, &e) && kind != KindInternal {
		resp.Message = e.Message
		resp.ValidationErrors = e.Details
	}

	s.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("requestId", requestID(r)),
		zap.Error(err),
	)

	writeJSON(w, status, resp)
}

func statusOf(kind ErrorKind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
