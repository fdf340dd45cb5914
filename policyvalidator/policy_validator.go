package policyvalidator

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/xeipuuv/gojsonschema"

	"autoscale/models"
)

const policySchema = `
{
	"type": "object",
	"required": ["name", "type", "cooldown"],
	"properties": {
		"name": {
			"type": "string",
			"minLength": 1,
			"maxLength": 256
		},
		"type": {
			"type": "string",
			"enum": ["webhook", "schedule"]
		},
		"cooldown": {
			"type": "integer",
			"minimum": 0,
			"maximum": 86400
		},
		"change": {
			"type": "integer"
		},
		"changePercent": {
			"type": "number"
		},
		"desiredCapacity": {
			"type": "integer",
			"minimum": 0
		},
		"args": {
			"type": "object",
			"properties": {
				"at": {
					"type": "string"
				},
				"cron": {
					"type": "string"
				}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}`

type PolicyValidationError struct {
	gojsonschema.ResultErrorFields
}

func newPolicyValidationError(context *gojsonschema.JsonContext, formatString string, errDetails gojsonschema.ErrorDetails) *PolicyValidationError {
	err := PolicyValidationError{}
	err.SetType("custom_invalid_policy_error")
	err.SetContext(context)
	err.SetDescriptionFormat(formatString)
	err.SetDetails(errDetails)
	return &err
}

type PolicyValidator struct {
	policySchemaLoader gojsonschema.JSONLoader
}

func NewPolicyValidator() *PolicyValidator {
	return &PolicyValidator{
		policySchemaLoader: gojsonschema.NewStringLoader(policySchema),
	}
}

// ParseAndValidatePolicy checks one policy document against the schema and
// the cross-field rules the schema cannot express (exactly one adjustment,
// schedule trigger syntax).
func (pv *PolicyValidator) ParseAndValidatePolicy(rawJSON json.RawMessage) (*models.ScalingPolicy, error) {
	policy := &models.ScalingPolicy{}
	if err := json.Unmarshal(rawJSON, policy); err != nil {
		return nil, &models.ValidationError{Message: err.Error()}
	}

	result, err := gojsonschema.Validate(pv.policySchemaLoader, gojsonschema.NewBytesLoader(rawJSON))
	if err != nil {
		return nil, &models.ValidationError{Message: err.Error()}
	}

	if result.Valid() {
		pv.validateAttributes(policy, result)
	}
	if len(result.Errors()) > 0 {
		return nil, &models.ValidationError{Message: describeErrors(result.Errors())}
	}
	return policy, nil
}

// ParseAndValidatePolicies validates a policy-create array body.
func (pv *PolicyValidator) ParseAndValidatePolicies(rawJSON json.RawMessage) ([]*models.ScalingPolicy, error) {
	rawPolicies := []json.RawMessage{}
	if err := json.Unmarshal(rawJSON, &rawPolicies); err != nil {
		return nil, &models.ValidationError{Message: "request body must be an array of policies"}
	}
	if len(rawPolicies) == 0 {
		return nil, &models.ValidationError{Message: "at least one policy is required"}
	}

	policies := make([]*models.ScalingPolicy, 0, len(rawPolicies))
	names := make(map[string]bool, len(rawPolicies))
	for i, raw := range rawPolicies {
		policy, err := pv.ParseAndValidatePolicy(raw)
		if err != nil {
			return nil, &models.ValidationError{Message: fmt.Sprintf("policy %d: %s", i, err.Error())}
		}
		// policy names are unique per group
		if names[policy.Name] {
			return nil, &models.ValidationError{Message: fmt.Sprintf("policy %d: duplicate policy name %q", i, policy.Name)}
		}
		names[policy.Name] = true
		policies = append(policies, policy)
	}
	return policies, nil
}

func (pv *PolicyValidator) validateAttributes(policy *models.ScalingPolicy, result *gojsonschema.Result) {
	rootContext := gojsonschema.NewJsonContext("(root)", nil)

	if policy.AdjustmentCount() != 1 {
		errDetails := gojsonschema.ErrorDetails{"count": policy.AdjustmentCount()}
		formatString := "policy must have exactly one of change, changePercent or desiredCapacity, got {{.count}}"
		result.AddError(newPolicyValidationError(rootContext, formatString, errDetails), errDetails)
	}

	switch policy.Type {
	case models.PolicyTypeSchedule:
		pv.validateScheduleArgs(policy, result, rootContext)
	case models.PolicyTypeWebhook:
		if policy.Args != nil {
			errDetails := gojsonschema.ErrorDetails{}
			result.AddError(newPolicyValidationError(rootContext, "webhook policy must not have args", errDetails), errDetails)
		}
	}
}

func (pv *PolicyValidator) validateScheduleArgs(policy *models.ScalingPolicy, result *gojsonschema.Result, rootContext *gojsonschema.JsonContext) {
	argsContext := gojsonschema.NewJsonContext("args", rootContext)
	if policy.Args == nil {
		errDetails := gojsonschema.ErrorDetails{}
		result.AddError(newPolicyValidationError(argsContext, "schedule policy requires args", errDetails), errDetails)
		return
	}
	if (policy.Args.At == "") == (policy.Args.Cron == "") {
		errDetails := gojsonschema.ErrorDetails{}
		result.AddError(newPolicyValidationError(argsContext, "schedule policy args must have exactly one of at or cron", errDetails), errDetails)
		return
	}
	if policy.Args.At != "" {
		if _, err := time.Parse(models.TimestampFormat, policy.Args.At); err != nil {
			errDetails := gojsonschema.ErrorDetails{"at": policy.Args.At}
			result.AddError(newPolicyValidationError(argsContext, "invalid at timestamp {{.at}}", errDetails), errDetails)
		}
	}
	if policy.Args.Cron != "" {
		if _, err := cron.ParseStandard(policy.Args.Cron); err != nil {
			errDetails := gojsonschema.ErrorDetails{"cron": policy.Args.Cron}
			result.AddError(newPolicyValidationError(argsContext, "invalid cron expression {{.cron}}", errDetails), errDetails)
		}
	}
}

func describeErrors(resultErrors []gojsonschema.ResultError) string {
	descriptions := make([]string, 0, len(resultErrors))
	for _, resultError := range resultErrors {
		descriptions = append(descriptions, fmt.Sprintf("%s: %s", resultError.Context().String(), resultError.Description()))
	}
	return strings.Join(descriptions, "; ")
}
