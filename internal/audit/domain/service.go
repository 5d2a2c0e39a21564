package domain

import (
	"context"
	"errors"

	"github.com/paydeck/paydeck/pkg/db/pagination"
)

type Service interface {
	Record(ctx context.Context, action, targetType, targetID string, metadata map[string]any) error
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
}

type ListRequest struct {
	Action string `form:"action"`
	pagination.Pagination
}

type ListResponse struct {
	Logs     []AuditLog          `json:"audit_logs"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

var ErrInvalidAction = errors.New("invalid_action")
