package repository

import (
	"fmt"
	"math"
	"time"

	"agrispray/internal/infra"

	"github.com/google/uuid"
)

// Collections in the backing document store.
const (
	CollectionSprayRequests  = "sprayRequests"
	CollectionSavedAddresses = "savedAddresses"
	CollectionUsers          = "users"
	CollectionOtpChallenges  = "otpChallenges"
)

// Accessors for loosely typed document bodies. Each returns a VALIDATION
// repository error naming the offending field, so a single malformed record
// can be rejected without poisoning a batch.

func fieldString(fields map[string]any, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", missingField(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(key, "string")
	}
	return s, nil
}

func fieldOptionalString(fields map[string]any, key string) (*string, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, wrongType(key, "string")
	}
	return &s, nil
}

// Numbers arrive as float64 after a JSON round trip but may still be native
// ints when a document never left the process.
func fieldFloat(fields map[string]any, key string) (float64, error) {
	v, ok := fields[key]
	if !ok {
		return 0, missingField(key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, wrongType(key, "number")
	}
}

func fieldInt(fields map[string]any, key string) (int, error) {
	f, err := fieldFloat(fields, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, wrongType(key, "integer")
	}
	return int(f), nil
}

func fieldTime(fields map[string]any, key string) (time.Time, error) {
	s, err := fieldString(fields, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, wrongType(key, "RFC3339 timestamp")
	}
	return t, nil
}

func fieldUUID(fields map[string]any, key string) (uuid.UUID, error) {
	s, err := fieldString(fields, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, wrongType(key, "uuid")
	}
	return id, nil
}

func missingField(key string) error {
	return infra.WrapRepoErr(fmt.Sprintf("document missing required field %q", key), nil, infra.KindValidation)
}

func wrongType(key, want string) error {
	return infra.WrapRepoErr(fmt.Sprintf("document field %q is not a %s", key, want), nil, infra.KindValidation)
}
