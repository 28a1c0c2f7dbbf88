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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReservationView(client MarketplaceClient, clock *time.Time) *ReservationView {
	view := NewReservationView(client, time.Minute)
	view.now = func() time.Time { return *clock }
	return view
}

func TestReservationView_List_ServesCacheUntilExpiry(t *testing.T) {
	client := mocks.NewMockMarketplaceClient(t)
	clock := testNow
	view := newTestReservationView(client, &clock)
	sess := openSession(t, testClientID, status.RoleClient)

	client.EXPECT().ListReservations(mock.Anything, sess).
		Return([]*api.Reservation{newReservation(models.Euros(5000))}, nil).Twice()

	first, err := view.List(context.Background(), sess, false)
	require.NoError(t, err)
	require.Len(t, first, 1)

	clock = clock.Add(30 * time.Second)
	cached, err := view.List(context.Background(), sess, false)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	clock = clock.Add(time.Minute)
	_, err = view.List(context.Background(), sess, false)
	require.NoError(t, err)
}

func TestReservationView_List_ForceBypassesCache(t *testing.T) {
	client := mocks.NewMockMarketplaceClient(t)
	clock := testNow
	view := newTestReservationView(client, &clock)
	sess := openSession(t, testClientID, status.RoleClient)

	client.EXPECT().ListReservations(mock.Anything, sess).Return(nil, nil).Twice()

	_, err := view.List(context.Background(), sess, false)
	require.NoError(t, err)
	_, err = view.List(context.Background(), sess, true)
	require.NoError(t, err)
}

func TestReservationView_Invalidate(t *testing.T) {
	client := mocks.NewMockMarketplaceClient(t)
	clock := testNow
	view := newTestReservationView(client, &clock)

	clientSess := openSession(t, testClientID, status.RoleClient)
	otherSess := openSession(t, testOtherClientID, status.RoleClient)
	adminSess := openSession(t, testAdminID, status.RoleAdmin)

	client.EXPECT().ListReservations(mock.Anything, clientSess).Return(nil, nil).Twice()
	client.EXPECT().ListReservations(mock.Anything, otherSess).Return(nil, nil).Once()
	client.EXPECT().ListReservations(mock.Anything, adminSess).Return(nil, nil).Twice()

	for _, sess := range []*session.Session{clientSess, otherSess, adminSess} {
		_, err := view.List(context.Background(), sess, false)
		require.NoError(t, err)
	}

	view.Invalidate(models.ID(testClientID))

	// The other client's list survives, the admin's does not
	for _, sess := range []*session.Session{clientSess, otherSess, adminSess} {
		_, err := view.List(context.Background(), sess, false)
		require.NoError(t, err)
	}
}

func TestReservationView_InvalidateAll(t *testing.T) {
	client := mocks.NewMockMarketplaceClient(t)
	clock := testNow
	view := newTestReservationView(client, &clock)
	sess := openSession(t, testPartnerID, status.RolePartner)

	client.EXPECT().ListReservations(mock.Anything, sess).Return(nil, nil).Twice()

	_, err := view.List(context.Background(), sess, false)
	require.NoError(t, err)
	view.InvalidateAll()
	_, err = view.List(context.Background(), sess, false)
	require.NoError(t, err)
}

func TestReservationView_List_Errors(t *testing.T) {
	client := mocks.NewMockMarketplaceClient(t)
	clock := testNow
	view := newTestReservationView(client, &clock)
	sess := openSession(t, testClientID, status.RoleClient)

	client.EXPECT().ListReservations(mock.Anything, sess).Return(nil, &apperrors.NetworkError{}).Once()

	_, err := view.List(context.Background(), sess, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))

	_, err = view.List(context.Background(), nil, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthorization(err))
}
