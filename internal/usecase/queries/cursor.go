package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxListLimit     = 200
	defaultListLimit = 50
	cursorPrefix     = "r1:"
)

// Cursor is an opaque keyset position over (created_at DESC, id DESC).
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microsecond precision to match PostgreSQL timestamptz.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%s%d.%s", cursorPrefix, t.UnixMicro(), id.String())
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor is not base64url: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return time.Time{}, uuid.Nil, fmt.Errorf("unknown cursor version")
	}

	micros, rawID, ok := strings.Cut(payload, ".")
	if !ok {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<micros>.<uuid>'")
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid timestamp: %w", err)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return time.UnixMicro(ts).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
