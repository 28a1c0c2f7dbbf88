package application

import (
	"context"
	"testing"
	"time"

	"github.com/depanneo/booking-platform/booking-service/mocks"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPartnerID      = "550e8400-e29b-41d4-a716-446655440020"
	testOtherPartnerID = "550e8400-e29b-41d4-a716-446655440021"
	testAssignmentID   = "550e8400-e29b-41d4-a716-446655440060"
)

func newAssignment(partnerID string, assignmentStatus status.AssignmentStatus) *api.Assignment {
	return &api.Assignment{
		ID:            models.ID(testAssignmentID),
		ReservationID: models.ID(testReservationID),
		PartnerID:     models.ID(partnerID),
		Status:        assignmentStatus,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}
}

func TestRespondToAssignment_Execute(t *testing.T) {
	superseded := newAssignment(testPartnerID, status.AssignmentSent)
	supersededAt := testNow.Add(time.Hour)
	superseded.SupersededAt = &supersededAt

	tests := []struct {
		name           string
		role           status.Role
		command        *RespondToAssignmentCommand
		setupMocks     func(*mocks.MockMarketplaceClient, *mocks.MockViewRefresher)
		writes         bool
		expectedKind   apperrors.Kind
		expectedStatus status.AssignmentStatus
	}{
		{
			name:    "accepting a pending assignment",
			role:    status.RolePartner,
			command: &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionAccept},
			setupMocks: func(client *mocks.MockMarketplaceClient, view *mocks.MockViewRefresher) {
				client.EXPECT().GetAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID)).
					Return(newAssignment(testPartnerID, status.AssignmentSent), nil).Once()
				client.EXPECT().RespondToAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID), status.ActionAccept).
					Return(newAssignment(testPartnerID, status.AssignmentAccepted), nil).Once()
				view.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			expectedStatus: status.AssignmentAccepted,
		},
		{
			name:    "rejecting a pending assignment",
			role:    status.RolePartner,
			command: &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionReject},
			setupMocks: func(client *mocks.MockMarketplaceClient, view *mocks.MockViewRefresher) {
				client.EXPECT().GetAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID)).
					Return(newAssignment(testPartnerID, status.AssignmentSent), nil).Once()
				client.EXPECT().RespondToAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID), status.ActionReject).
					Return(newAssignment(testPartnerID, status.AssignmentRejected), nil).Once()
				view.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, errors.New("marketplace down")).Once()
			},
			expectedStatus: status.AssignmentRejected,
		},
		{
			name:    "already accepted assignment is refused without a write",
			role:    status.RolePartner,
			command: &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionReject},
			setupMocks: func(client *mocks.MockMarketplaceClient, view *mocks.MockViewRefresher) {
				client.EXPECT().GetAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID)).
					Return(newAssignment(testPartnerID, status.AssignmentAccepted), nil).Once()
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:    "already rejected assignment is refused without a write",
			role:    status.RolePartner,
			command: &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionAccept},
			setupMocks: func(client *mocks.MockMarketplaceClient, view *mocks.MockViewRefresher) {
				client.EXPECT().GetAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID)).
					Return(newAssignment(testPartnerID, status.AssignmentRejected), nil).Once()
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:    "superseded assignment is refused",
			role:    status.RolePartner,
			command: &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionAccept},
			setupMocks: func(client *mocks.MockMarketplaceClient, view *mocks.MockViewRefresher) {
				client.EXPECT().GetAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID)).
					Return(superseded, nil).Once()
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:    "race lost on the marketplace surfaces as a conflict",
			role:    status.RolePartner,
			command: &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionAccept},
			setupMocks: func(client *mocks.MockMarketplaceClient, view *mocks.MockViewRefresher) {
				client.EXPECT().GetAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID)).
					Return(newAssignment(testPartnerID, status.AssignmentSent), nil).Once()
				client.EXPECT().RespondToAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID), status.ActionAccept).
					Return(nil, &apperrors.ConflictError{Message: "Vous avez déjà répondu à cette mission."}).Once()
			},
			writes:       true,
			expectedKind: apperrors.KindConflict,
		},
		{
			name:    "assignment addressed to another partner",
			role:    status.RolePartner,
			command: &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionAccept},
			setupMocks: func(client *mocks.MockMarketplaceClient, view *mocks.MockViewRefresher) {
				client.EXPECT().GetAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID)).
					Return(newAssignment(testOtherPartnerID, status.AssignmentSent), nil).Once()
			},
			expectedKind: apperrors.KindAuthorization,
		},
		{
			name:         "client cannot respond",
			role:         status.RoleClient,
			command:      &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionAccept},
			setupMocks:   func(*mocks.MockMarketplaceClient, *mocks.MockViewRefresher) {},
			expectedKind: apperrors.KindAuthorization,
		},
		{
			name:         "unknown action",
			role:         status.RolePartner,
			command:      &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: "maybe"},
			setupMocks:   func(*mocks.MockMarketplaceClient, *mocks.MockViewRefresher) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "malformed assignment ID",
			role:         status.RolePartner,
			command:      &RespondToAssignmentCommand{AssignmentID: "42", Action: status.ActionAccept},
			setupMocks:   func(*mocks.MockMarketplaceClient, *mocks.MockViewRefresher) {},
			expectedKind: apperrors.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockMarketplaceClient(t)
			view := mocks.NewMockViewRefresher(t)
			tt.setupMocks(client, view)

			uc := NewRespondToAssignment(client, view, discardLogger())
			assignment, err := uc.Execute(context.Background(), openSession(t, testPartnerID, tt.role), tt.command)

			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Nil(t, assignment)
				if !tt.writes {
					client.AssertNotCalled(t, "RespondToAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, assignment.Status)
		})
	}
}

func TestRespondToAssignment_FirstAnswerWins(t *testing.T) {
	client := mocks.NewMockMarketplaceClient(t)
	view := mocks.NewMockViewRefresher(t)

	current := newAssignment(testPartnerID, status.AssignmentSent)
	client.EXPECT().GetAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID)).
		RunAndReturn(func(context.Context, *session.Session, models.ID) (*api.Assignment, error) {
			snapshot := *current
			return &snapshot, nil
		}).Twice()
	client.EXPECT().RespondToAssignment(mock.Anything, mock.Anything, models.ID(testAssignmentID), status.ActionAccept).
		RunAndReturn(func(context.Context, *session.Session, models.ID, status.AssignmentAction) (*api.Assignment, error) {
			current.Status = status.AssignmentAccepted
			snapshot := *current
			return &snapshot, nil
		}).Once()
	view.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, nil).Once()

	uc := NewRespondToAssignment(client, view, discardLogger())
	sess := openSession(t, testPartnerID, status.RolePartner)

	first, err := uc.Execute(context.Background(), sess, &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionAccept})
	require.NoError(t, err)
	assert.Equal(t, status.AssignmentAccepted, first.Status)

	_, err = uc.Execute(context.Background(), sess, &RespondToAssignmentCommand{AssignmentID: testAssignmentID, Action: status.ActionReject})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Vous avez déjà répondu à cette mission.", apperrors.UserMessage(err))
	assert.Equal(t, status.AssignmentAccepted, current.Status)
}
