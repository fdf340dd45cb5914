package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"autoscale/convergence"
	"autoscale/db"
	"autoscale/helpers"
	"autoscale/models"
	"autoscale/policyvalidator"
)

type GroupCreateRequest struct {
	GroupConfiguration  json.RawMessage `json:"groupConfiguration"`
	LaunchConfiguration json.RawMessage `json:"launchConfiguration"`
	ScalingPolicies     json.RawMessage `json:"scalingPolicies,omitempty"`
}

type GroupHandler struct {
	logger          lager.Logger
	groupDB         db.GroupDB
	policyDB        db.PolicyDB
	engine          convergence.Engine
	policyValidator *policyvalidator.PolicyValidator
	maxGroups       int
	maxPolicies     int
}

func NewGroupHandler(logger lager.Logger, groupDB db.GroupDB, policyDB db.PolicyDB,
	engine convergence.Engine, policyValidator *policyvalidator.PolicyValidator,
	maxGroups int, maxPolicies int) *GroupHandler {
	return &GroupHandler{
		logger:          logger.Session("group-handler"),
		groupDB:         groupDB,
		policyDB:        policyDB,
		engine:          engine,
		policyValidator: policyValidator,
		maxGroups:       maxGroups,
		maxPolicies:     maxPolicies,
	}
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	logger := h.logger.WithData(lager.Data{"tenantId": tenantID})

	request := &GroupCreateRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		logger.Error("create-group-unmarshal-body", err)
		writeError(logger, w, &models.ValidationError{Message: "invalid request body"})
		return
	}

	conf := models.DefaultGroupConfiguration()
	if err := unmarshalStrictDocument(request.GroupConfiguration, &conf, "groupConfiguration"); err != nil {
		writeError(logger, w, err)
		return
	}
	if err := conf.Validate(); err != nil {
		writeError(logger, w, err)
		return
	}

	launch := models.DefaultLaunchConfiguration()
	if err := unmarshalStrictDocument(request.LaunchConfiguration, &launch, "launchConfiguration"); err != nil {
		writeError(logger, w, err)
		return
	}
	if err := launch.Validate(); err != nil {
		writeError(logger, w, err)
		return
	}

	var policies []*models.ScalingPolicy
	if len(request.ScalingPolicies) > 0 {
		var err error
		policies, err = h.policyValidator.ParseAndValidatePolicies(request.ScalingPolicies)
		if err != nil {
			writeError(logger, w, err)
			return
		}
		if len(policies) > h.maxPolicies {
			writeError(logger, w, &models.PoliciesOverLimitError{Limit: h.maxPolicies})
			return
		}
	}

	count, err := h.groupDB.CountGroups(tenantID)
	if err != nil {
		writeError(logger, w, err)
		return
	}
	if count >= h.maxGroups {
		writeError(logger, w, &models.GroupsOverLimitError{Limit: h.maxGroups})
		return
	}

	groupID, err := helpers.GenerateGUID(logger)
	if err != nil {
		writeError(logger, w, err)
		return
	}

	group := &models.ScalingGroup{
		ID:           groupID,
		TenantID:     tenantID,
		Config:       conf,
		LaunchConfig: launch,
		Policies:     policies,
		State: models.GroupState{
			Status:          models.GroupStatusActive,
			DesiredCapacity: conf.MinEntities,
			Active:          []models.Entity{},
			Pending:         []models.Entity{},
		},
	}
	for _, policy := range policies {
		policyID, err := helpers.GenerateGUID(logger)
		if err != nil {
			writeError(logger, w, err)
			return
		}
		policy.ID = policyID
	}

	if err = h.groupDB.CreateGroup(group); err != nil {
		logger.Error("create-group", err)
		writeError(logger, w, err)
		return
	}
	if len(policies) > 0 {
		if err = h.policyDB.CreatePolicies(tenantID, groupID, policies); err != nil {
			logger.Error("create-group-policies", err)
			writeError(logger, w, err)
			return
		}
	}
	logger.Info("group-created", lager.Data{"groupId": groupID, "minEntities": conf.MinEntities})

	// bring the new group up to its minimum
	go h.convergeInBackground(tenantID, groupID)

	handlers.WriteJSONResponse(w, http.StatusCreated, group)
}

func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groups, err := h.groupDB.ListGroups(tenantID)
	if err != nil {
		h.logger.Error("list-groups", err, lager.Data{"tenantId": tenantID})
		writeError(h.logger, w, err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, groups)
}

func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	group, err := h.loadGroup(vars)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	policies, err := h.policyDB.ListPolicies(group.TenantID, group.ID)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	group.Policies = policies
	handlers.WriteJSONResponse(w, http.StatusOK, group)
}

func (h *GroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	force := strings.EqualFold(r.URL.Query().Get("force"), "true")

	err := h.engine.DeleteGroup(tenantID, groupID, force)
	if err != nil {
		h.logger.Error("delete-group", err, lager.Data{"groupId": groupID, "force": force})
		writeError(h.logger, w, err)
		return
	}
	if err = h.policyDB.DeleteGroupPolicies(tenantID, groupID); err != nil {
		h.logger.Error("delete-group-policies", err, lager.Data{"groupId": groupID})
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) GetGroupConfig(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	group, err := h.loadGroup(vars)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, group.Config)
}

func (h *GroupHandler) UpdateGroupConfig(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	logger := h.logger.WithData(lager.Data{"groupId": groupID})

	conf := models.DefaultGroupConfiguration()
	if err := decodeStrictBody(r, &conf); err != nil {
		writeError(logger, w, err)
		return
	}
	if err := conf.Validate(); err != nil {
		writeError(logger, w, err)
		return
	}
	if err := h.groupDB.UpdateGroupConfiguration(tenantID, groupID, conf); err != nil {
		logger.Error("update-group-config", err)
		writeError(logger, w, err)
		return
	}
	logger.Info("group-config-updated", lager.Data{"minEntities": conf.MinEntities, "maxEntities": conf.MaxEntities})

	// new bounds may require capacity changes
	go h.convergeInBackground(tenantID, groupID)

	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) GetLaunchConfig(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	group, err := h.loadGroup(vars)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, group.LaunchConfig)
}

func (h *GroupHandler) UpdateLaunchConfig(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	logger := h.logger.WithData(lager.Data{"groupId": groupID})

	launch := models.DefaultLaunchConfiguration()
	if err := decodeStrictBody(r, &launch); err != nil {
		writeError(logger, w, err)
		return
	}
	if err := launch.Validate(); err != nil {
		writeError(logger, w, err)
		return
	}
	if err := h.groupDB.UpdateLaunchConfiguration(tenantID, groupID, launch); err != nil {
		logger.Error("update-launch-config", err)
		writeError(logger, w, err)
		return
	}
	logger.Info("launch-config-updated")
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) GetGroupState(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	group, err := h.loadGroup(vars)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, group.State.ToResponse())
}

func (h *GroupHandler) PauseGroup(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	h.setPaused(w, vars, true)
}

func (h *GroupHandler) ResumeGroup(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	h.setPaused(w, vars, false)
}

func (h *GroupHandler) setPaused(w http.ResponseWriter, vars map[string]string, paused bool) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	err := h.engine.SetPaused(tenantID, groupID, paused)
	if err != nil {
		h.logger.Error("set-paused", err, lager.Data{"groupId": groupID, "paused": paused})
		writeError(h.logger, w, err)
		return
	}
	if !paused {
		// resuming reconciles whatever drifted while paused
		go h.convergeInBackground(tenantID, groupID)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) ConvergeGroup(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	err := h.engine.Converge(tenantID, groupID)
	if err != nil {
		h.logger.Error("converge-group", err, lager.Data{"groupId": groupID})
		writeError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) GetScalingHistories(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	logger := h.logger.WithData(lager.Data{"groupId": groupID})

	var err error
	start := int64(0)
	if startParam := r.URL.Query().Get("start"); startParam != "" {
		start, err = strconv.ParseInt(startParam, 10, 64)
		if err != nil {
			writeError(logger, w, &models.ValidationError{Message: fmt.Sprintf("invalid start time %q", startParam)})
			return
		}
	}
	end := int64(-1)
	if endParam := r.URL.Query().Get("end"); endParam != "" {
		end, err = strconv.ParseInt(endParam, 10, 64)
		if err != nil {
			writeError(logger, w, &models.ValidationError{Message: fmt.Sprintf("invalid end time %q", endParam)})
			return
		}
	}
	order := db.DESC
	if orderParam := r.URL.Query().Get("order"); orderParam != "" {
		switch strings.ToUpper(orderParam) {
		case db.DESCSTR:
			order = db.DESC
		case db.ASCSTR:
			order = db.ASC
		default:
			writeError(logger, w, &models.ValidationError{Message: fmt.Sprintf("invalid order %q", orderParam)})
			return
		}
	}

	histories, err := h.groupDB.RetrieveScalingHistories(tenantID, groupID, start, end, order)
	if err != nil {
		logger.Error("get-scaling-histories", err)
		writeError(logger, w, err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, histories)
}

func (h *GroupHandler) loadGroup(vars map[string]string) (*models.ScalingGroup, error) {
	return h.groupDB.GetGroup(vars["tenantId"], vars["groupId"])
}

func (h *GroupHandler) convergeInBackground(tenantID string, groupID string) {
	err := h.engine.Converge(tenantID, groupID)
	if err != nil {
		switch err.(type) {
		case *models.GroupPausedError:
			h.logger.Info("background-convergence-suppressed", lager.Data{"groupId": groupID})
		default:
			h.logger.Error("background-convergence", err, lager.Data{"groupId": groupID})
		}
	}
}

func unmarshalStrictDocument(raw json.RawMessage, target interface{}, name string) error {
	if len(raw) == 0 {
		return &models.ValidationError{Message: name + " is required"}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return &models.ValidationError{Message: fmt.Sprintf("invalid %s: %s", name, err.Error())}
	}
	return nil
}

func decodeStrictBody(r *http.Request, target interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return &models.ValidationError{Message: "invalid request body"}
	}
	return nil
}
