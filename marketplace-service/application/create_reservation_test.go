package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/marketplace-service/mocks"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	sharedmocks "github.com/depanneo/booking-platform/shared/mocks"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/depanneo/booking-platform/shared/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation_Execute(t *testing.T) {
	clientID := models.GenerateUUID()
	serviceID := models.GenerateUUID()
	today := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	date := "2026-03-10"
	pastDate := "2026-03-01"
	slot := "après-midi"

	tests := []struct {
		name          string
		role          status.Role
		request       api.CreateReservationRequest
		key           string
		setupMocks    func(*mocks.MockServiceRepository, *mocks.MockReservationRepository, *mocks.MockIdempotencyStore, *sharedmocks.MockPublisher)
		expectedKind  apperrors.Kind
		expectedField string
	}{
		{
			name: "creates a nouvelle reservation with the service price",
			role: status.RoleClient,
			request: api.CreateReservationRequest{
				ServiceID:     serviceID.String(),
				Address:       "8 quai des Chartrons",
				PostalCode:    "33000",
				DateRequested: &date,
				TimeSlot:      &slot,
			},
			key: "run-1:creating_reservation",
			setupMocks: func(services *mocks.MockServiceRepository, reservations *mocks.MockReservationRepository, store *mocks.MockIdempotencyStore, publisher *sharedmocks.MockPublisher) {
				store.EXPECT().Lookup(mock.Anything, clientID, "run-1:creating_reservation").Return(nil, false, nil).Once()
				services.EXPECT().FindByID(mock.Anything, serviceID).
					Return(domain.NewService(serviceID, "Serrurerie", "50€ - 100€", models.Money{}), nil).Once()
				reservations.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
				store.EXPECT().Remember(mock.Anything, clientID, "run-1:creating_reservation", mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "replayed key returns the first reservation",
			role: status.RoleClient,
			request: api.CreateReservationRequest{
				ServiceID:  serviceID.String(),
				Address:    "8 quai des Chartrons",
				PostalCode: "33000",
			},
			key: "run-1:creating_reservation",
			setupMocks: func(_ *mocks.MockServiceRepository, _ *mocks.MockReservationRepository, store *mocks.MockIdempotencyStore, _ *sharedmocks.MockPublisher) {
				raw, err := json.Marshal(&api.Reservation{
					ID:         models.GenerateUUID(),
					ClientID:   clientID,
					ServiceID:  serviceID,
					Address:    "8 quai des Chartrons",
					PostalCode: "33000",
					Status:     status.ReservationNew,
					Price:      models.Euros(5000),
				})
				require.NoError(t, err)
				store.EXPECT().Lookup(mock.Anything, clientID, "run-1:creating_reservation").Return(raw, true, nil).Once()
			},
		},
		{
			name: "service without a usable price",
			role: status.RoleClient,
			request: api.CreateReservationRequest{
				ServiceID:  serviceID.String(),
				Address:    "8 quai des Chartrons",
				PostalCode: "33000",
			},
			setupMocks: func(services *mocks.MockServiceRepository, _ *mocks.MockReservationRepository, _ *mocks.MockIdempotencyStore, _ *sharedmocks.MockPublisher) {
				services.EXPECT().FindByID(mock.Anything, serviceID).
					Return(domain.NewService(serviceID, "Diagnostic", "Sur devis", models.Money{}), nil).Once()
			},
			expectedKind:  apperrors.KindValidation,
			expectedField: "serviceId",
		},
		{
			name: "unknown service",
			role: status.RoleClient,
			request: api.CreateReservationRequest{
				ServiceID:  serviceID.String(),
				Address:    "8 quai des Chartrons",
				PostalCode: "33000",
			},
			setupMocks: func(services *mocks.MockServiceRepository, _ *mocks.MockReservationRepository, _ *mocks.MockIdempotencyStore, _ *sharedmocks.MockPublisher) {
				services.EXPECT().FindByID(mock.Anything, serviceID).Return(nil, nil).Once()
			},
			expectedKind: apperrors.KindNotFound,
		},
		{
			name: "short postal code",
			role: status.RoleClient,
			request: api.CreateReservationRequest{
				ServiceID:  serviceID.String(),
				Address:    "8 quai des Chartrons",
				PostalCode: "3300",
			},
			setupMocks:    func(*mocks.MockServiceRepository, *mocks.MockReservationRepository, *mocks.MockIdempotencyStore, *sharedmocks.MockPublisher) {},
			expectedKind:  apperrors.KindValidation,
			expectedField: "postal_code",
		},
		{
			name: "past date",
			role: status.RoleClient,
			request: api.CreateReservationRequest{
				ServiceID:     serviceID.String(),
				Address:       "8 quai des Chartrons",
				PostalCode:    "33000",
				DateRequested: &pastDate,
				TimeSlot:      &slot,
			},
			setupMocks:    func(*mocks.MockServiceRepository, *mocks.MockReservationRepository, *mocks.MockIdempotencyStore, *sharedmocks.MockPublisher) {},
			expectedKind:  apperrors.KindValidation,
			expectedField: "date_requested",
		},
		{
			name: "partner cannot book",
			role: status.RolePartner,
			request: api.CreateReservationRequest{
				ServiceID:  serviceID.String(),
				Address:    "8 quai des Chartrons",
				PostalCode: "33000",
			},
			setupMocks:   func(*mocks.MockServiceRepository, *mocks.MockReservationRepository, *mocks.MockIdempotencyStore, *sharedmocks.MockPublisher) {},
			expectedKind: apperrors.KindAuthorization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := mocks.NewMockServiceRepository(t)
			reservations := mocks.NewMockReservationRepository(t)
			store := mocks.NewMockIdempotencyStore(t)
			publisher := sharedmocks.NewMockPublisher(t)
			tt.setupMocks(services, reservations, store, publisher)

			uc := NewCreateReservation(
				services,
				reservations,
				store,
				validation.NewReservationValidator(func() time.Time { return today }),
				publisher,
				discardLogger(),
			)
			reservation, err := uc.Execute(context.Background(), user(clientID, tt.role), &CreateReservationCommand{
				CreateReservationRequest: tt.request,
				IdempotencyKey:           tt.key,
			})

			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				if tt.expectedField != "" {
					fieldErrors := apperrors.FieldErrors(err)
					require.NotEmpty(t, fieldErrors)
					assert.Equal(t, tt.expectedField, fieldErrors[0].Param)
				}
				reservations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, clientID, reservation.ClientID)
			assert.Equal(t, status.ReservationNew, reservation.Status)
			assert.Equal(t, int64(5000), reservation.Price.Amount)
			assert.Nil(t, reservation.PartnerID)
		})
	}
}

func TestUpdateReservationStatus_Execute(t *testing.T) {
	for _, to := range status.ReservationStatuses {
		t.Run(to.String(), func(t *testing.T) {
			reservation := newTestReservation(models.GenerateUUID())
			reservations := mocks.NewMockReservationRepository(t)
			publisher := sharedmocks.NewMockPublisher(t)

			reservations.EXPECT().FindByID(mock.Anything, reservation.ID).Return(reservation, nil).Once()
			reservations.EXPECT().Save(mock.Anything, reservation).Return(nil).Once()
			publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

			uc := NewUpdateReservationStatus(reservations, publisher, discardLogger())
			updated, err := uc.Execute(context.Background(), user(models.GenerateUUID(), status.RoleAdmin), &UpdateReservationStatusCommand{
				ReservationID: reservation.ID.String(),
				Status:        to,
			})

			require.NoError(t, err)
			assert.Equal(t, to, updated.Status)
		})
	}

	t.Run("client cannot change the status", func(t *testing.T) {
		uc := NewUpdateReservationStatus(mocks.NewMockReservationRepository(t), sharedmocks.NewMockPublisher(t), discardLogger())
		_, err := uc.Execute(context.Background(), user(models.GenerateUUID(), status.RoleClient), &UpdateReservationStatusCommand{
			ReservationID: models.GenerateUUID().String(),
			Status:        status.ReservationCancelled,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsAuthorization(err))
	})
}

func TestListReservations_FiltersByRole(t *testing.T) {
	actorID := models.GenerateUUID()

	tests := []struct {
		name     string
		role     status.Role
		expected domain.ReservationFilter
	}{
		{name: "client sees their own", role: status.RoleClient, expected: domain.ReservationFilter{ClientID: &actorID}},
		{name: "partner sees assigned", role: status.RolePartner, expected: domain.ReservationFilter{PartnerID: &actorID}},
		{name: "admin sees all", role: status.RoleAdmin, expected: domain.ReservationFilter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservations := mocks.NewMockReservationRepository(t)
			reservations.EXPECT().Find(mock.Anything, tt.expected).
				Return([]*domain.Reservation{newTestReservation(actorID)}, nil).Once()

			uc := NewListReservations(reservations)
			result, err := uc.Execute(context.Background(), user(actorID, tt.role))

			require.NoError(t, err)
			assert.Len(t, result, 1)
		})
	}
}
