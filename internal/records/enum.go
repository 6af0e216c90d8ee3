package records

import (
	json "github.com/goccy/go-json"

	"example.com/healthrecords/internal/validation"
)

func parseEnum[E ~int](raw int, valid []E, enumName string) (E, error) {
	value := E(raw)
	if err := validation.ValidateEnumValue(value, valid, enumName); err != nil {
		return 0, err
	}
	return value, nil
}

func validateEnum[E ~int](value E, valid []E, enumName string) error {
	return validation.ValidateEnumValue(value, valid, enumName)
}

// unmarshalEnum accepts any integer. Membership is checked by DecodePayload
// and the build pipeline so that unchecked reads keep stored values intact.
func unmarshalEnum[E ~int](data []byte, dst *E) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*dst = E(raw)
	return nil
}

func marshalJSON(v any) ([]byte, error) { return json.Marshal(v) }

func unmarshalJSON(data []byte, v any) error { return json.Unmarshal(data, v) }
