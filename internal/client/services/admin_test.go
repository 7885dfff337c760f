package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wedmac/wedmac-admin/internal/client/api"
	"github.com/wedmac/wedmac-admin/internal/client/models"
	"github.com/wedmac/wedmac-admin/internal/common"
)

func TestListTickets_Passthrough(t *testing.T) {
	client := &fakeAPI{tickets: []models.Ticket{{ID: 1, Subject: "refund"}}}
	svc := NewAdminService(client, testLogger())

	tickets, err := svc.ListTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
}

func TestListTickets_MapsExpiredSession(t *testing.T) {
	client := &fakeAPI{ticketsErr: &api.Error{Status: http.StatusUnauthorized, Message: "token expired"}}
	svc := NewAdminService(client, testLogger())

	_, err := svc.ListTickets(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestActivityLogs_Passthrough(t *testing.T) {
	client := &fakeAPI{logsPage: &models.ActivityLogPage{TotalPages: 4, CurrentPage: 2}}
	svc := NewAdminService(client, testLogger())

	page, err := svc.ActivityLogs(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Equal(t, 4, page.TotalPages)
}

func TestSubmit_EmptyBatchRejected(t *testing.T) {
	svc := NewLeadService(&fakeAPI{}, testLogger())

	_, err := svc.Submit(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrNothingToSubmit)
}

func TestSubmit_SendsFullRowList(t *testing.T) {
	client := &fakeAPI{createRet: &models.BulkCreateResult{
		Results: []models.ImportResult{
			{Success: true, Lead: json.RawMessage(`{"id":1}`)},
			{Success: false, Errors: json.RawMessage(`{"phone":["required"]}`)},
			{Success: true, Lead: json.RawMessage(`{"id":2}`)},
		},
	}}
	svc := NewLeadService(client, testLogger())

	leads := []models.Lead{{"phone": "9000000001"}, {}, {"phone": "9000000002"}}
	out, err := svc.Submit(context.Background(), leads)
	require.NoError(t, err)

	require.Len(t, client.lastLeads, 3, "every parsed row is submitted")
	require.Len(t, out.Results, 3)
	require.False(t, out.Results[1].Success, "result i belongs to submitted row i")
}
