package output

import (
	"encoding/json"
)

func ToJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}", err
	}
	return string(data), nil
}
