package models

const (
	CapabilityVersion = "1"

	MaxWebhookMetadataValueLength = 256
)

type Capability struct {
	Version string `json:"version"`
	Hash    string `json:"hash"`
}

// Webhook enables anonymous execution of its owning policy through the
// capability hash embedded in its execute URL.
type Webhook struct {
	ID         string            `json:"id,omitempty"`
	Name       string            `json:"name"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Capability Capability        `json:"capability,omitempty"`
}

func (w *Webhook) Validate() error {
	if w.Name == "" {
		return &ValidationError{Message: "webhook name is required"}
	}
	for key, value := range w.Metadata {
		if len(value) > MaxWebhookMetadataValueLength {
			return &ValidationError{Message: "webhook metadata value for key " + key + " exceeds 256 characters"}
		}
	}
	return nil
}
