package server

import (
	"net/http"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"

	"autoscale/models"
	"autoscale/routes"
)

// AuthMiddleware checks that a token is present on tenant-scoped routes.
// Token validation and role checks belong to an external identity service;
// this is the hook point for them.
type AuthMiddleware struct {
	logger lager.Logger
}

func NewAuthMiddleware(logger lager.Logger) *AuthMiddleware {
	return &AuthMiddleware{logger: logger}
}

func (mw *AuthMiddleware) CheckAuthToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil && route.GetName() == routes.AnonymousExecuteRouteName {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("X-Auth-Token") == "" {
			mw.logger.Info("missing-auth-token", lager.Data{"url": r.URL.String()})
			handlers.WriteJSONResponse(w, http.StatusUnauthorized, models.ErrorResponse{
				Code:    "Invalid-Credentials",
				Message: "X-Auth-Token header is required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
