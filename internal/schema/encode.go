package schema

import (
	"encoding/json"
	"fmt"

	"github.com/aeokit/aeograph/internal/schema/model"
)

// EncodeJSONLD serializes a validated graph document for embedding. An empty
// document encodes to "".
func EncodeJSONLD(doc model.Node) (string, error) {
	if len(doc) == 0 {
		return "", nil
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON-LD: %w", err)
	}
	return string(data), nil
}
