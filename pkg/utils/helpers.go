package utils

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"requestquote/pkg/contextkeys"
	apperrors "requestquote/pkg/errors"
)

func StringPtr(s string) *string { return &s }

func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func NullTimeToEmptyString(nt sql.NullTime) string {
	if nt.Valid {
		return nt.Time.Local().Format("2006-01-02 15:04:05")
	}
	return ""
}

func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}

// ParseUint64Slice parses a list of decimal ids, skipping blanks. A single
// malformed element fails the whole parse.
func ParseUint64Slice(strs []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(strs))
	for _, s := range strs {
		if s == "" {
			continue
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, apperrors.ErrBadRequest
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetUserIDFromCtx reads the authenticated admin id placed by the auth
// middleware.
func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

// GetShopIDFromCtx reads the tenant scope; defaults to shop 1 when the
// caller did not set one.
func GetShopIDFromCtx(ctx context.Context) uint64 {
	if id, ok := ctx.Value(contextkeys.ShopIDKey).(uint64); ok && id > 0 {
		return id
	}
	return 1
}
