package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/cased/dashboard-api/internal/domain"
	"github.com/cased/dashboard-api/internal/usecases/dashboarding"
	"github.com/cased/dashboard-api/pkg/apiErrors"
	"github.com/cased/dashboard-api/pkg/log"
)

// GetUserProfile retorna o perfil derivado da atividade de um usuário.
// O username vem como query param; sem ele só o perfil em cache pode ser
// servido.
func GetUserProfile(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		username := r.URL.Query().Get("username")

		logger.WithFields(log.Fields{
			"user_id":  userID,
			"username": username,
		}).Info("profile: fetching user profile")

		profile, err := service.LoadUserProfile(r.Context(), userID, username)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProfileNotFound, "Perfil não encontrado em cache e username não informado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("profile: failed to load user profile")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao montar perfil do usuário", nil)
			return
		}

		writeJSON(w, logger, profile)
	})
}
