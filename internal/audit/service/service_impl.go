package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/paydeck/paydeck/internal/audit/domain"
	"github.com/paydeck/paydeck/pkg/db/option"
	"github.com/paydeck/paydeck/pkg/db/pagination"
	"github.com/paydeck/paydeck/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  repository.Repository[auditdomain.AuditLog]
}

func NewService(p Params) auditdomain.Service {
	return &Service{
		log:   p.Log.Named("audit.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[auditdomain.AuditLog](p.DB),
	}
}

// Record writes an audit entry. Failures are returned but callers generally
// log and continue; auditing never blocks the mutation it describes.
func (s *Service) Record(ctx context.Context, action, targetType, targetID string, metadata map[string]any) error {
	action = strings.TrimSpace(action)
	if action == "" {
		return auditdomain.ErrInvalidAction
	}
	if targetType = strings.TrimSpace(targetType); targetType == "" {
		targetType = "unknown"
	}

	payload := map[string]any{}
	for key, value := range metadata {
		if key == "" {
			continue
		}
		payload[key] = value
	}

	entry := &auditdomain.AuditLog{
		ID:         s.genID.Generate(),
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Metadata:   payload,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Warn("audit write failed", zap.String("action", action), zap.Error(err))
		return err
	}
	return nil
}

// List pages through the audit trail newest first. Snowflake IDs are
// time-ordered, so the cursor is just the last ID seen.
func (s *Service) List(ctx context.Context, req auditdomain.ListRequest) (*auditdomain.ListResponse, error) {
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 250 {
		pageSize = 25
	}

	opts := []option.QueryOption{
		option.WithOrder("id DESC"),
		option.WithLimit(pageSize + 1),
	}
	if req.PageToken != "" {
		cursor, err := pagination.DecodeCursor(req.PageToken)
		if err != nil {
			return nil, err
		}
		cursorID, err := snowflake.ParseString(cursor.ID)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCondition("id < ?", int64(cursorID)))
	}

	filter := &auditdomain.AuditLog{Action: strings.TrimSpace(req.Action)}
	entries, err := s.repo.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	hasMore := len(entries) > pageSize
	if hasMore {
		entries = entries[:pageSize]
	}

	logs := make([]auditdomain.AuditLog, 0, len(entries))
	for _, entry := range entries {
		logs = append(logs, *entry)
	}

	var nextToken string
	if hasMore && len(logs) > 0 {
		nextToken, err = pagination.EncodeCursor(pagination.Cursor{ID: logs[len(logs)-1].ID.String()})
		if err != nil {
			return nil, err
		}
	}

	return &auditdomain.ListResponse{
		Logs: logs,
		PageInfo: pagination.PageInfo{
			NextPageToken: nextToken,
			HasMore:       hasMore,
		},
	}, nil
}
