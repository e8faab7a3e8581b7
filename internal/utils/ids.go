package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID produces a unique opaque identifier with a readable prefix,
// e.g. "txn_6f1c9a...". The prefix makes ids self-describing in logs and
// foreign keys.
func GenerateID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
