package server

import (
	"net/http"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"autoscale/models"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Anything
// unrecognized is an internal error and must not leak its text verbatim.
func writeError(logger lager.Logger, w http.ResponseWriter, err error) {
	switch err.(type) {
	case *models.ValidationError:
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Validation-Error",
			Message: err.Error()})
	case *models.GroupPausedError:
		handlers.WriteJSONResponse(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "Group-Paused",
			Message: err.Error()})
	case *models.CannotExecutePolicyError:
		handlers.WriteJSONResponse(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "Cannot-Execute-Policy",
			Message: err.Error()})
	case *models.GroupNotEmptyError:
		handlers.WriteJSONResponse(w, http.StatusForbidden, models.ErrorResponse{
			Code:    "Group-Not-Empty",
			Message: err.Error()})
	case *models.NoSuchScalingGroupError, *models.NoSuchPolicyError, *models.NoSuchWebhookError:
		handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "Not-Found",
			Message: err.Error()})
	case *models.GroupsOverLimitError, *models.PoliciesOverLimitError, *models.WebhookOverLimitsError:
		handlers.WriteJSONResponse(w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Code:    "Over-Limit",
			Message: err.Error()})
	default:
		logger.Error("internal-server-error", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "An unexpected error occurred"})
	}
}
