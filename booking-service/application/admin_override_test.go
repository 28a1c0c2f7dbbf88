package application

import (
	"context"
	"testing"

	"github.com/depanneo/booking-platform/booking-service/mocks"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAdminID = "550e8400-e29b-41d4-a716-446655440001"

func TestAdminOverride_SetReservationStatus_AnyStatusRoundTrips(t *testing.T) {
	for _, to := range status.ReservationStatuses {
		t.Run(to.String(), func(t *testing.T) {
			client := mocks.NewMockMarketplaceClient(t)
			view := mocks.NewMockViewRefresher(t)

			client.EXPECT().UpdateReservationStatus(mock.Anything, mock.Anything, models.ID(testReservationID), to).
				RunAndReturn(func(_ context.Context, _ *session.Session, id models.ID, s status.ReservationStatus) (*api.Reservation, error) {
					reservation := newReservation(models.Euros(5000))
					reservation.Status = s
					return reservation, nil
				}).Once()
			view.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, nil).Once()

			uc := NewAdminOverride(client, view, discardLogger())
			reservation, err := uc.SetReservationStatus(context.Background(), openSession(t, testAdminID, status.RoleAdmin), testReservationID, to)

			require.NoError(t, err)
			assert.Equal(t, to, reservation.Status)
		})
	}
}

func TestAdminOverride_SetReservationStatus_Rejected(t *testing.T) {
	tests := []struct {
		name          string
		role          status.Role
		reservationID string
		to            status.ReservationStatus
		expectedKind  apperrors.Kind
	}{
		{
			name:          "unknown status",
			role:          status.RoleAdmin,
			reservationID: testReservationID,
			to:            "archivée",
			expectedKind:  apperrors.KindValidation,
		},
		{
			name:          "client cannot override",
			role:          status.RoleClient,
			reservationID: testReservationID,
			to:            status.ReservationCancelled,
			expectedKind:  apperrors.KindAuthorization,
		},
		{
			name:          "partner cannot override",
			role:          status.RolePartner,
			reservationID: testReservationID,
			to:            status.ReservationCompleted,
			expectedKind:  apperrors.KindAuthorization,
		},
		{
			name:          "malformed reservation ID",
			role:          status.RoleAdmin,
			reservationID: "nope",
			to:            status.ReservationConfirmed,
			expectedKind:  apperrors.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockMarketplaceClient(t)
			view := mocks.NewMockViewRefresher(t)

			uc := NewAdminOverride(client, view, discardLogger())
			reservation, err := uc.SetReservationStatus(context.Background(), openSession(t, testAdminID, tt.role), tt.reservationID, tt.to)

			require.Error(t, err)
			assert.Nil(t, reservation)
			assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
			client.AssertNotCalled(t, "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAdminOverride_AssignPartner(t *testing.T) {
	tests := []struct {
		name         string
		role         status.Role
		partnerID    string
		setupMocks   func(*mocks.MockMarketplaceClient, *mocks.MockViewRefresher)
		expectedKind apperrors.Kind
	}{
		{
			name:      "assigns the partner",
			role:      status.RoleAdmin,
			partnerID: testPartnerID,
			setupMocks: func(client *mocks.MockMarketplaceClient, view *mocks.MockViewRefresher) {
				client.EXPECT().AssignPartner(mock.Anything, mock.Anything, models.ID(testReservationID), models.ID(testPartnerID)).
					RunAndReturn(func(_ context.Context, _ *session.Session, _ models.ID, partnerID models.ID) (*api.Reservation, error) {
						reservation := newReservation(models.Euros(5000))
						sent := status.AssignmentSent
						reservation.PartnerID = &partnerID
						reservation.PartnerStatus = &sent
						return reservation, nil
					}).Once()
				view.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
		},
		{
			name:      "marketplace refuses the partner",
			role:      status.RoleAdmin,
			partnerID: testPartnerID,
			setupMocks: func(client *mocks.MockMarketplaceClient, view *mocks.MockViewRefresher) {
				client.EXPECT().AssignPartner(mock.Anything, mock.Anything, models.ID(testReservationID), models.ID(testPartnerID)).
					Return(nil, &apperrors.RequestError{Status: 400, Message: "Cet utilisateur n'est pas un partenaire."}).Once()
			},
			expectedKind: apperrors.KindRequest,
		},
		{
			name:         "malformed partner ID",
			role:         status.RoleAdmin,
			partnerID:    "bob",
			setupMocks:   func(*mocks.MockMarketplaceClient, *mocks.MockViewRefresher) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "client cannot assign",
			role:         status.RoleClient,
			partnerID:    testPartnerID,
			setupMocks:   func(*mocks.MockMarketplaceClient, *mocks.MockViewRefresher) {},
			expectedKind: apperrors.KindAuthorization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockMarketplaceClient(t)
			view := mocks.NewMockViewRefresher(t)
			tt.setupMocks(client, view)

			uc := NewAdminOverride(client, view, discardLogger())
			reservation, err := uc.AssignPartner(context.Background(), openSession(t, testAdminID, tt.role), testReservationID, tt.partnerID)

			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, reservation.PartnerID)
			assert.Equal(t, models.ID(testPartnerID), *reservation.PartnerID)
			require.NotNil(t, reservation.PartnerStatus)
			assert.Equal(t, status.AssignmentSent, *reservation.PartnerStatus)
		})
	}
}
