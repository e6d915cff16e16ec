package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion returns the set's version.
// Priority: user-provided set.Version, else SHA256(set JSON)[:8] in hex.
func ComputeVersion(set *ParamSet) string {
	if set.Version != "" {
		return set.Version
	}

	data, err := json.Marshal(set)
	if err != nil {
		// NaN or Inf parameters; Validate rejects the former.
		return "unversioned"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
