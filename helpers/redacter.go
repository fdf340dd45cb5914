package helpers

import (
	"encoding/json"
	"regexp"

	"code.cloudfoundry.org/lager"
)

// matches postgres connection URLs so the password segment can be masked
const dbURLPattern = `^(postgres|postgresql):\/\/(.+):(.+)@([\da-zA-Z\.-]+)(:[\d]{4,5})?\/(.+)`

// CredRedacter scrubs credentials from serialized log entries: key and value
// patterns via lager's JSONRedacter, plus passwords embedded in database
// connection URLs anywhere in the entry.
type CredRedacter struct {
	keyValueRedacter *lager.JSONRedacter
	urlCredMatcher   *regexp.Regexp
}

func NewCredRedacter(keyPatterns []string, valuePatterns []string) (*CredRedacter, error) {
	keyValueRedacter, err := lager.NewJSONRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	urlCredMatcher, err := regexp.Compile(dbURLPattern)
	if err != nil {
		return nil, err
	}
	return &CredRedacter{
		keyValueRedacter: keyValueRedacter,
		urlCredMatcher:   urlCredMatcher,
	}, nil
}

func (r *CredRedacter) Redact(data []byte) []byte {
	var blob interface{}
	if err := json.Unmarshal(data, &blob); err != nil {
		return redactError(err)
	}
	blob = r.redactValue(blob)

	data, err := json.Marshal(blob)
	if err != nil {
		return redactError(err)
	}
	return r.keyValueRedacter.Redact(data)
}

func (r *CredRedacter) redactValue(data interface{}) interface{} {
	switch v := data.(type) {
	case []interface{}:
		for i := range v {
			v[i] = r.redactValue(v[i])
		}
		return v
	case map[string]interface{}:
		for k, elem := range v {
			v[k] = r.redactValue(elem)
		}
		return v
	case string:
		if r.urlCredMatcher.MatchString(v) {
			return r.urlCredMatcher.ReplaceAllString(v, `$1://$2:*REDACTED*@$4$5/$6`)
		}
		return v
	default:
		return data
	}
}

func redactError(err error) []byte {
	var content []byte
	if _, ok := err.(*json.UnsupportedTypeError); ok {
		content, err = json.Marshal(map[string]interface{}{"log_serialization_error": err.Error()})
	}
	if err != nil {
		panic(err)
	}
	return content
}
