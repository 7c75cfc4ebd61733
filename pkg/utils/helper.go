package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to float64, reporting whether it was present
// and valid. Used for lat/lng/radius query parameters.
func ParseFloat(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return result, true
}

// NewObjectKey builds a storage object key namespaced by owner.
// Format: <user_id>/<yyyymmdd>/<random>.<ext>
func NewObjectKey(userID uuid.UUID, ext string) string {
	datePart := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s/%s.%s", userID.String(), datePart, uuid.NewString(), ext)
}
