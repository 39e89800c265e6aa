package media

import (
	"encoding/json"
	"fmt"
)

// JSONHandler serializes values as JSON through encoding/json.
type JSONHandler struct{}

// Serialize encodes v; contentType parameters do not change the encoding.
func (JSONHandler) Serialize(v any, contentType string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cairn/http/media: failed encoding %T: %s", v, err)
	}

	return b, nil
}
