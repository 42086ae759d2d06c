package shared

// Metadata is a free-form key/value bag attached to entities.
type Metadata map[string]any

// MergeMetadata merges an update into existing metadata key by key.
// A nil value in the update removes the key. The inputs are not mutated.
func MergeMetadata(existing, update Metadata) Metadata {
	if update == nil {
		return existing
	}
	merged := make(Metadata, len(existing)+len(update))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range update {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	return merged
}
