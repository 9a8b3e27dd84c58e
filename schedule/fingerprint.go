package schedule

import "github.com/mitchellh/hashstructure/v2"

// Fingerprint returns a stable hash of s, letting determinism tests compare
// two runs' output with a single uint64 instead of a deep reflect.DeepEqual.
func Fingerprint(s Schedule) (uint64, error) {
	return hashstructure.Hash(s, hashstructure.FormatV2, nil)
}
