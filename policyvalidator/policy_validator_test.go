package policyvalidator_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"autoscale/models"
	"autoscale/policyvalidator"
)

var _ = Describe("PolicyValidator", func() {
	var (
		policyValidator *policyvalidator.PolicyValidator
		rawPolicy       string
		policy          *models.ScalingPolicy
		err             error
	)

	BeforeEach(func() {
		policyValidator = policyvalidator.NewPolicyValidator()
	})

	Describe("ParseAndValidatePolicy", func() {
		JustBeforeEach(func() {
			policy, err = policyValidator.ParseAndValidatePolicy(json.RawMessage(rawPolicy))
		})

		Context("when the policy is a valid webhook policy", func() {
			BeforeEach(func() {
				rawPolicy = `{
					"name": "scale up",
					"type": "webhook",
					"cooldown": 300,
					"change": 1
				}`
			})
			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(policy.Name).To(Equal("scale up"))
				Expect(policy.Type).To(Equal(models.PolicyTypeWebhook))
				Expect(*policy.Change).To(Equal(1))
			})
		})

		Context("when the policy is a valid cron schedule policy", func() {
			BeforeEach(func() {
				rawPolicy = `{
					"name": "scale up each morning",
					"type": "schedule",
					"cooldown": 0,
					"changePercent": 10.5,
					"args": {"cron": "0 9 * * 1-5"}
				}`
			})
			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(policy.Args.Cron).To(Equal("0 9 * * 1-5"))
			})
		})

		Context("when the policy is a valid at schedule policy", func() {
			BeforeEach(func() {
				rawPolicy = `{
					"name": "new year burst",
					"type": "schedule",
					"cooldown": 600,
					"desiredCapacity": 15,
					"args": {"at": "2026-12-31T23:00:00Z"}
				}`
			})
			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(*policy.DesiredCapacity).To(Equal(15))
			})
		})

		Context("when the body is not valid json", func() {
			BeforeEach(func() {
				rawPolicy = `{`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
			})
		})

		Context("when name is missing", func() {
			BeforeEach(func() {
				rawPolicy = `{"type": "webhook", "cooldown": 300, "change": 1}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("name"))
			})
		})

		Context("when type is unknown", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "manual", "cooldown": 300, "change": 1}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("type"))
			})
		})

		Context("when cooldown is above the maximum", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "webhook", "cooldown": 86401, "change": 1}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("cooldown"))
			})
		})

		Context("when no adjustment field is set", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "webhook", "cooldown": 300}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("exactly one of change, changePercent or desiredCapacity"))
			})
		})

		Context("when two adjustment fields are set", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "webhook", "cooldown": 300, "change": 1, "desiredCapacity": 5}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("exactly one of change, changePercent or desiredCapacity"))
			})
		})

		Context("when a webhook policy carries args", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "webhook", "cooldown": 300, "change": 1, "args": {"cron": "* * * * *"}}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("webhook policy must not have args"))
			})
		})

		Context("when a schedule policy has no args", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "schedule", "cooldown": 300, "change": 1}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("schedule policy requires args"))
			})
		})

		Context("when a schedule policy has both at and cron", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "schedule", "cooldown": 300, "change": 1,
					"args": {"at": "2026-12-31T23:00:00Z", "cron": "* * * * *"}}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("exactly one of at or cron"))
			})
		})

		Context("when the cron expression is invalid", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "schedule", "cooldown": 300, "change": 1, "args": {"cron": "not-cron"}}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("invalid cron expression"))
			})
		})

		Context("when the at timestamp is invalid", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "schedule", "cooldown": 300, "change": 1, "args": {"at": "tomorrow"}}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
				Expect(err.Error()).To(ContainSubstring("invalid at timestamp"))
			})
		})

		Context("when an unknown field is present", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "n", "type": "webhook", "cooldown": 300, "change": 1, "capacity": 3}`
			})
			It("fails", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.ValidationError{}))
			})
		})
	})

	Describe("ParseAndValidatePolicies", func() {
		var policies []*models.ScalingPolicy

		JustBeforeEach(func() {
			policies, err = policyValidator.ParseAndValidatePolicies(json.RawMessage(rawPolicy))
		})

		Context("when the body is an array of valid policies", func() {
			BeforeEach(func() {
				rawPolicy = `[
					{"name": "scale up", "type": "webhook", "cooldown": 300, "change": 1},
					{"name": "scale down", "type": "webhook", "cooldown": 300, "change": -1}
				]`
			})
			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(policies).To(HaveLen(2))
				Expect(policies[1].Name).To(Equal("scale down"))
			})
		})

		Context("when the body is not an array", func() {
			BeforeEach(func() {
				rawPolicy = `{"name": "scale up", "type": "webhook", "cooldown": 300, "change": 1}`
			})
			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring("must be an array")))
			})
		})

		Context("when two policies share a name", func() {
			BeforeEach(func() {
				rawPolicy = `[
					{"name": "scale up", "type": "webhook", "cooldown": 300, "change": 1},
					{"name": "scale up", "type": "webhook", "cooldown": 300, "change": 2}
				]`
			})
			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring(`duplicate policy name "scale up"`)))
			})
		})

		Context("when the array is empty", func() {
			BeforeEach(func() {
				rawPolicy = `[]`
			})
			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring("at least one policy is required")))
			})
		})

		Context("when one policy in the array is invalid", func() {
			BeforeEach(func() {
				rawPolicy = `[
					{"name": "scale up", "type": "webhook", "cooldown": 300, "change": 1},
					{"name": "broken", "type": "webhook", "cooldown": 300}
				]`
			})
			It("fails naming the offending index", func() {
				Expect(err).To(MatchError(ContainSubstring("policy 1:")))
			})
		})
	})
})
