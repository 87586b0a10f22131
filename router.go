package mesto

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Router builds the route table. Unmatched routes and methods fall
// through to the shared 404 handler.
func (s *Server) Router() http.Handler {
	router := httprouter.New()
	router.HandleMethodNotAllowed = false
	router.NotFound = http.HandlerFunc(s.notFound)

	router.Handler(http.MethodPost, "/signup", http.HandlerFunc(s.signup))
	router.Handler(http.MethodPost, "/signin", http.HandlerFunc(s.signin))

	router.Handler(http.MethodGet, "/users", s.requireAuth(http.HandlerFunc(s.listUsers)))
	router.Handler(http.MethodGet, "/users/:userId", s.requireAuth(http.HandlerFunc(s.getUser)))
	router.Handler(http.MethodPatch, "/users/me", s.requireAuth(http.HandlerFunc(s.updateProfile)))
	router.Handler(http.MethodPatch, "/users/me/avatar", s.requireAuth(http.HandlerFunc(s.updateAvatar)))

	router.Handler(http.MethodGet, "/cards", s.requireAuth(http.HandlerFunc(s.listCards)))
	router.Handler(http.MethodPost, "/cards", s.requireAuth(http.HandlerFunc(s.createCard)))
	router.Handler(http.MethodDelete, "/cards/:cardId", s.requireAuth(http.HandlerFunc(s.deleteCard)))
	router.Handler(http.MethodPut, "/cards/:cardId/likes", s.requireAuth(http.HandlerFunc(s.likeCard)))
	router.Handler(http.MethodDelete, "/cards/:cardId/likes", s.requireAuth(http.HandlerFunc(s.unlikeCard)))

	return s.logRequests(router)
}
