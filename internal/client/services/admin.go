package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wedmac/wedmac-admin/internal/client/api"
	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/common"
	"github.com/wedmac/wedmac-admin/internal/logging"
)

// AdminService exposes the back-office operations: support tickets and
// artist activity logs.
type AdminService interface {
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	RespondTicket(ctx context.Context, id int, status, response string) error
	DeleteTicket(ctx context.Context, id int) error
	ActivityLogs(ctx context.Context, page, pageSize int) (*models.ActivityLogPage, error)
}

type adminService struct {
	client api.API
	log    logging.Logger
}

func NewAdminService(client api.API, log logging.Logger) AdminService {
	return &adminService{client: client, log: log.With("component", "admin")}
}

// mapAuthError turns a 401 into the sentinel the CLI renders as
// "session expired". Expiry is only ever discovered here — there is no
// proactive token-expiry detection.
func mapAuthError(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Unauthorized() {
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, apiErr.Message)
	}
	return err
}

func (s *adminService) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	tickets, err := s.client.ListTickets(ctx)
	if err != nil {
		return nil, mapAuthError(err)
	}
	return tickets, nil
}

func (s *adminService) RespondTicket(ctx context.Context, id int, status, response string) error {
	if err := s.client.UpdateTicket(ctx, id, status, response); err != nil {
		return mapAuthError(err)
	}
	s.log.Info(ctx, "ticket updated", "id", id, "status", status)
	return nil
}

func (s *adminService) DeleteTicket(ctx context.Context, id int) error {
	if err := s.client.DeleteTicket(ctx, id); err != nil {
		return mapAuthError(err)
	}
	s.log.Info(ctx, "ticket deleted", "id", id)
	return nil
}

func (s *adminService) ActivityLogs(ctx context.Context, page, pageSize int) (*models.ActivityLogPage, error) {
	logs, err := s.client.ListActivityLogs(ctx, page, pageSize)
	if err != nil {
		return nil, mapAuthError(err)
	}
	return logs, nil
}
