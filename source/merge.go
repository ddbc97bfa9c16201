package source

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergeData deep-merges two data trees with JSON merge-patch
// semantics: overlay values win, overlay nulls remove keys, objects
// merge recursively, arrays replace wholesale.
func MergeData(base, overlay *Data) (*Data, error) {
	baseDoc, err := json.Marshal(base.root)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", base.Description(), err)
	}
	overlayDoc, err := json.Marshal(overlay.root)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", overlay.Description(), err)
	}
	merged, err := jsonpatch.MergePatch(baseDoc, overlayDoc)
	if err != nil {
		return nil, fmt.Errorf("merging %s over %s: %w", overlay.Description(), base.Description(), err)
	}
	var root map[string]any
	if err := json.Unmarshal(merged, &root); err != nil {
		return nil, fmt.Errorf("decoding merge of %s over %s: %w", overlay.Description(), base.Description(), err)
	}
	return NewData(root).WithDescription(base.Description() + "+" + overlay.Description()), nil
}
