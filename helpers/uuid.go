package helpers

import (
	"code.cloudfoundry.org/lager"
	uuid "github.com/nu7hatch/gouuid"
)

// GenerateGUID returns a random v4 UUID string, used for group, policy and
// webhook IDs and for the instance lock owner.
func GenerateGUID(logger lager.Logger) (string, error) {
	guid, err := uuid.NewV4()
	if err != nil {
		logger.Error("failed-to-generate-guid", err)
		return "", err
	}
	return guid.String(), nil
}
