package display

import (
	"encoding/json"
)

// MarshalJSON pretty-prints for human consumption.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
