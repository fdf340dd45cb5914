package server

import (
	"encoding/json"
	"net/http"
	"time"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"
	cache "github.com/patrickmn/go-cache"

	"autoscale/convergence"
	"autoscale/db"
	"autoscale/helpers"
	"autoscale/models"
)

const (
	capabilityCacheExpiration = 10 * time.Minute
	capabilityCacheCleanup    = 30 * time.Minute
)

type WebhookHandler struct {
	logger          lager.Logger
	webhookDB       db.WebhookDB
	engine          convergence.Engine
	capabilityCache *cache.Cache
	maxWebhooks     int
}

func NewWebhookHandler(logger lager.Logger, webhookDB db.WebhookDB, engine convergence.Engine,
	maxWebhooks int) *WebhookHandler {
	return &WebhookHandler{
		logger:          logger.Session("webhook-handler"),
		webhookDB:       webhookDB,
		engine:          engine,
		capabilityCache: cache.New(capabilityCacheExpiration, capabilityCacheCleanup),
		maxWebhooks:     maxWebhooks,
	}
}

func (h *WebhookHandler) CreateWebhooks(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	policyID := vars["policyId"]
	logger := h.logger.WithData(lager.Data{"groupId": groupID, "policyId": policyID})

	webhooks := []*models.Webhook{}
	if err := json.NewDecoder(r.Body).Decode(&webhooks); err != nil {
		writeError(logger, w, &models.ValidationError{Message: "request body must be an array of webhooks"})
		return
	}
	if len(webhooks) == 0 {
		writeError(logger, w, &models.ValidationError{Message: "at least one webhook is required"})
		return
	}
	for _, webhook := range webhooks {
		if err := webhook.Validate(); err != nil {
			writeError(logger, w, err)
			return
		}
	}

	existing, err := h.webhookDB.ListWebhooks(tenantID, groupID, policyID)
	if err != nil {
		writeError(logger, w, err)
		return
	}
	if len(existing)+len(webhooks) > h.maxWebhooks {
		writeError(logger, w, &models.WebhookOverLimitsError{Limit: h.maxWebhooks})
		return
	}

	for _, webhook := range webhooks {
		webhookID, err := helpers.GenerateGUID(logger)
		if err != nil {
			writeError(logger, w, err)
			return
		}
		hash, err := helpers.GenerateCapabilityHash()
		if err != nil {
			writeError(logger, w, err)
			return
		}
		webhook.ID = webhookID
		webhook.Capability = models.Capability{Version: models.CapabilityVersion, Hash: hash}
	}

	if err = h.webhookDB.CreateWebhooks(tenantID, groupID, policyID, webhooks); err != nil {
		logger.Error("create-webhooks", err)
		writeError(logger, w, err)
		return
	}
	logger.Info("webhooks-created", lager.Data{"count": len(webhooks)})
	handlers.WriteJSONResponse(w, http.StatusCreated, webhooks)
}

func (h *WebhookHandler) ListWebhooks(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	webhooks, err := h.webhookDB.ListWebhooks(vars["tenantId"], vars["groupId"], vars["policyId"])
	if err != nil {
		h.logger.Error("list-webhooks", err, lager.Data{"policyId": vars["policyId"]})
		writeError(h.logger, w, err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, webhooks)
}

func (h *WebhookHandler) GetWebhook(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	webhook, err := h.webhookDB.GetWebhook(vars["tenantId"], vars["groupId"], vars["policyId"], vars["webhookId"])
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, webhook)
}

// UpdateWebhook has full-replace semantics and mints a fresh capability
// hash, revoking the previous execute URL.
func (h *WebhookHandler) UpdateWebhook(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	policyID := vars["policyId"]
	webhookID := vars["webhookId"]
	logger := h.logger.WithData(lager.Data{"webhookId": webhookID})

	webhook := &models.Webhook{}
	if err := json.NewDecoder(r.Body).Decode(webhook); err != nil {
		writeError(logger, w, &models.ValidationError{Message: "invalid request body"})
		return
	}
	if err := webhook.Validate(); err != nil {
		writeError(logger, w, err)
		return
	}

	previous, err := h.webhookDB.GetWebhook(tenantID, groupID, policyID, webhookID)
	if err != nil {
		writeError(logger, w, err)
		return
	}

	hash, err := helpers.GenerateCapabilityHash()
	if err != nil {
		writeError(logger, w, err)
		return
	}
	webhook.ID = webhookID
	webhook.Capability = models.Capability{Version: models.CapabilityVersion, Hash: hash}

	if err = h.webhookDB.UpdateWebhook(tenantID, groupID, policyID, webhook); err != nil {
		logger.Error("update-webhook", err)
		writeError(logger, w, err)
		return
	}
	h.capabilityCache.Delete(capabilityCacheKey(previous.Capability.Version, previous.Capability.Hash))
	logger.Info("webhook-updated")
	handlers.WriteJSONResponse(w, http.StatusOK, webhook)
}

func (h *WebhookHandler) DeleteWebhook(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	tenantID := vars["tenantId"]
	groupID := vars["groupId"]
	policyID := vars["policyId"]
	webhookID := vars["webhookId"]

	webhook, err := h.webhookDB.GetWebhook(tenantID, groupID, policyID, webhookID)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	if err = h.webhookDB.DeleteWebhook(tenantID, groupID, policyID, webhookID); err != nil {
		h.logger.Error("delete-webhook", err, lager.Data{"webhookId": webhookID})
		writeError(h.logger, w, err)
		return
	}
	h.capabilityCache.Delete(capabilityCacheKey(webhook.Capability.Version, webhook.Capability.Hash))
	w.WriteHeader(http.StatusNoContent)
}

// AnonymousExecute answers 202 with no body regardless of outcome so that
// the existence of a capability hash is never disclosed.
func (h *WebhookHandler) AnonymousExecute(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	version := vars["capabilityVersion"]
	hash := vars["capabilityHash"]

	ref, err := h.lookupCapability(version, hash)
	if err == nil {
		go h.executeInBackground(ref)
	} else {
		h.logger.Info("anonymous-execute-unknown-capability")
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *WebhookHandler) lookupCapability(version string, hash string) (*models.PolicyRef, error) {
	key := capabilityCacheKey(version, hash)
	if cached, found := h.capabilityCache.Get(key); found {
		return cached.(*models.PolicyRef), nil
	}
	ref, err := h.webhookDB.GetPolicyByCapability(version, hash)
	if err != nil {
		return nil, err
	}
	h.capabilityCache.SetDefault(key, ref)
	return ref, nil
}

func (h *WebhookHandler) executeInBackground(ref *models.PolicyRef) {
	err := h.engine.ExecutePolicy(ref.TenantID, ref.GroupID, ref.PolicyID)
	if err != nil {
		switch err.(type) {
		case *models.GroupPausedError, *models.CannotExecutePolicyError:
			h.logger.Info("webhook-execution-suppressed", lager.Data{"policyId": ref.PolicyID, "reason": err.Error()})
		default:
			h.logger.Error("webhook-execution", err, lager.Data{"policyId": ref.PolicyID})
		}
	}
}

func capabilityCacheKey(version string, hash string) string {
	return version + "/" + hash
}
