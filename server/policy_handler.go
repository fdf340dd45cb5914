package server

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"autoscale/convergence"
	"autoscale/db"
	"autoscale/helpers"
	"autoscale/models"
	"autoscale/policyvalidator"
)

type PolicyHandler struct {
	logger          lager.Logger
	policyDB        db.PolicyDB
	engine          convergence.Engine
	policyValidator *policyvalidator.PolicyValidator
	maxPolicies     int
}

func NewPolicyHandler(logger lager.Logger, policyDB db.PolicyDB, engine convergence.Engine,
	policyValidator *policyvalidator.PolicyValidator, maxPolicies int) *PolicyHandler {
	return &PolicyHandler{
		logger:          logger.Session("policy-handler"),
		policyDB:        policyDB,
		engine:          engine,
		policyValidator: policyValidator,
		maxPolicies:     maxPolicies,
	}
}

func (h *PolicyHandler) CreatePolicies(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	logger := h.logger.WithData(lager.Data{"groupId": groupID})

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(logger, w, &models.ValidationError{Message: "failed to read request body"})
		return
	}
	policies, err := h.policyValidator.ParseAndValidatePolicies(json.RawMessage(body))
	if err != nil {
		writeError(logger, w, err)
		return
	}

	existing, err := h.policyDB.ListPolicies(tenantID, groupID)
	if err != nil {
		writeError(logger, w, err)
		return
	}
	if len(existing)+len(policies) > h.maxPolicies {
		writeError(logger, w, &models.PoliciesOverLimitError{Limit: h.maxPolicies})
		return
	}
	for _, policy := range policies {
		if policyNameInUse(existing, policy.Name, "") {
			writeError(logger, w, &models.ValidationError{
				Message: fmt.Sprintf("policy name %q is already in use", policy.Name)})
			return
		}
	}

	for _, policy := range policies {
		policyID, err := helpers.GenerateGUID(logger)
		if err != nil {
			writeError(logger, w, err)
			return
		}
		policy.ID = policyID
	}
	if err = h.policyDB.CreatePolicies(tenantID, groupID, policies); err != nil {
		logger.Error("create-policies", err)
		writeError(logger, w, err)
		return
	}
	logger.Info("policies-created", lager.Data{"count": len(policies)})
	handlers.WriteJSONResponse(w, http.StatusCreated, policies)
}

func (h *PolicyHandler) ListPolicies(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	policies, err := h.policyDB.ListPolicies(vars["tenantId"], vars["groupId"])
	if err != nil {
		h.logger.Error("list-policies", err, lager.Data{"groupId": vars["groupId"]})
		writeError(h.logger, w, err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, policies)
}

func (h *PolicyHandler) GetPolicy(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	policy, err := h.policyDB.GetPolicy(vars["tenantId"], vars["groupId"], vars["policyId"])
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, policy)
}

func (h *PolicyHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	policyID := vars["policyId"]
	logger := h.logger.WithData(lager.Data{"groupId": groupID, "policyId": policyID})

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(logger, w, &models.ValidationError{Message: "failed to read request body"})
		return
	}
	policy, err := h.policyValidator.ParseAndValidatePolicy(json.RawMessage(body))
	if err != nil {
		writeError(logger, w, err)
		return
	}
	policy.ID = policyID

	existing, err := h.policyDB.ListPolicies(tenantID, groupID)
	if err != nil {
		writeError(logger, w, err)
		return
	}
	if policyNameInUse(existing, policy.Name, policyID) {
		writeError(logger, w, &models.ValidationError{
			Message: fmt.Sprintf("policy name %q is already in use", policy.Name)})
		return
	}

	if err = h.policyDB.UpdatePolicy(tenantID, groupID, policy); err != nil {
		logger.Error("update-policy", err)
		writeError(logger, w, err)
		return
	}
	logger.Info("policy-updated")
	w.WriteHeader(http.StatusNoContent)
}

func (h *PolicyHandler) DeletePolicy(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	err := h.policyDB.DeletePolicy(vars["tenantId"], vars["groupId"], vars["policyId"])
	if err != nil {
		h.logger.Error("delete-policy", err, lager.Data{"policyId": vars["policyId"]})
		writeError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExecutePolicy runs the policy synchronously under the group lock but
// responds 202: convergence completes asynchronously as builds finish.
func (h *PolicyHandler) ExecutePolicy(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	policyID := vars["policyId"]

	err := h.engine.ExecutePolicy(tenantID, groupID, policyID)
	if err != nil {
		h.logger.Error("execute-policy", err, lager.Data{"groupId": groupID, "policyId": policyID})
		writeError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// policy names are unique per group
func policyNameInUse(policies []*models.ScalingPolicy, name string, excludeID string) bool {
	for _, p := range policies {
		if p.Name == name && p.ID != excludeID {
			return true
		}
	}
	return false
}
