package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/provider"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository/mocks"
	"github.com/yagomat/supra-client-nexus-sub000/internal/session"
)

type sessionFixture struct {
	sessionRepo *mocks.MockSessionRepository
	registry    *session.Registry
	prov        *stubProvider
	svc         SessionService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	ctrl := gomock.NewController(t)

	f := &sessionFixture{
		sessionRepo: mocks.NewMockSessionRepository(ctrl),
		registry:    session.NewRegistry(),
		prov:        &stubProvider{},
	}

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Session().Return(f.sessionRepo).AnyTimes()

	f.svc = NewSessionService(testConfig(), repo, f.registry, f.prov, deadRedis(), nil, zap.NewNop())
	return f
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestSessionService_Initialize_SingleInstancePerUser(t *testing.T) {
	f := newSessionFixture(t)

	f.sessionRepo.EXPECT().
		UpsertStatus(gomock.Any(), "user-1", models.SessionStatusConnecting).
		Return(nil)

	first, err := f.svc.Initialize(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusConnecting, first.Status)
	assert.False(t, first.AlreadyInitializing)

	// Second call sees the live instance and starts nothing.
	second, err := f.svc.Initialize(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, second.AlreadyInitializing)
	assert.Equal(t, 1, f.prov.startCount())
	assert.Equal(t, 1, f.registry.Len())
}

func TestSessionService_Initialize_ProviderFailure(t *testing.T) {
	f := newSessionFixture(t)
	f.prov.startErr = assert.AnError

	gomock.InOrder(
		f.sessionRepo.EXPECT().
			UpsertStatus(gomock.Any(), "user-1", models.SessionStatusConnecting).
			Return(nil),
		f.sessionRepo.EXPECT().
			UpsertStatus(gomock.Any(), "user-1", models.SessionStatusError).
			Return(nil),
	)

	_, err := f.svc.Initialize(context.Background(), "user-1")
	require.Error(t, err)
	assert.Equal(t, 0, f.registry.Len())
}

func TestSessionService_Disconnect_Idempotent(t *testing.T) {
	f := newSessionFixture(t)

	f.sessionRepo.EXPECT().
		UpsertStatus(gomock.Any(), "user-1", models.SessionStatusDisconnected).
		Return(nil).
		Times(2)

	// No session exists yet; disconnect still lands on disconnected.
	result, err := f.svc.Disconnect(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusDisconnected, result.Status)

	_, err = f.svc.Disconnect(context.Background(), "user-1")
	require.NoError(t, err)
}

func TestSessionService_Disconnect_ClosesLiveInstance(t *testing.T) {
	f := newSessionFixture(t)

	f.sessionRepo.EXPECT().UpsertStatus(gomock.Any(), "user-1", gomock.Any()).Return(nil).AnyTimes()

	_, err := f.svc.Initialize(context.Background(), "user-1")
	require.NoError(t, err)
	inst := f.prov.lastInstance()
	require.NotNil(t, inst)

	_, err = f.svc.Disconnect(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, inst.isClosed())
	assert.Equal(t, 0, f.registry.Len())
}

func TestSessionService_EventLoop_QRAndConnect(t *testing.T) {
	f := newSessionFixture(t)

	qrSaved := make(chan string, 1)
	connected := make(chan string, 1)

	f.sessionRepo.EXPECT().UpsertStatus(gomock.Any(), "user-1", models.SessionStatusConnecting).Return(nil)
	f.sessionRepo.EXPECT().SetQRCode(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, code string) error {
			qrSaved <- code
			return nil
		})
	f.sessionRepo.EXPECT().SetConnected(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, phone string) error {
			connected <- phone
			return nil
		})

	_, err := f.svc.Initialize(context.Background(), "user-1")
	require.NoError(t, err)
	inst := f.prov.lastInstance()

	inst.Inject(provider.QRIssued{Code: "qr-payload-1"})
	select {
	case code := <-qrSaved:
		assert.Equal(t, "qr-payload-1", code)
	case <-time.After(2 * time.Second):
		t.Fatal("QR code was not persisted")
	}

	inst.Inject(provider.StatusChanged{State: provider.StateOpen, PhoneNumber: "5511999990000"})
	select {
	case phone := <-connected:
		assert.Equal(t, "5511999990000", phone)
	case <-time.After(2 * time.Second):
		t.Fatal("connected status was not persisted")
	}
}

func TestSessionService_EventLoop_CloseTearsDown(t *testing.T) {
	f := newSessionFixture(t)

	f.sessionRepo.EXPECT().UpsertStatus(gomock.Any(), "user-1", models.SessionStatusConnecting).Return(nil)

	torn := make(chan struct{})
	f.sessionRepo.EXPECT().
		UpsertStatus(gomock.Any(), "user-1", models.SessionStatusDisconnected).
		DoAndReturn(func(context.Context, string, models.SessionStatus) error {
			close(torn)
			return nil
		})

	_, err := f.svc.Initialize(context.Background(), "user-1")
	require.NoError(t, err)
	inst := f.prov.lastInstance()

	inst.Inject(provider.StatusChanged{State: provider.StateClosed})

	select {
	case <-torn:
	case <-time.After(2 * time.Second):
		t.Fatal("teardown did not persist disconnected status")
	}

	waitFor(t, func() bool { return f.registry.Len() == 0 }, "instance was not removed from registry")
	assert.True(t, inst.isClosed())
}

func TestSessionService_HandleProviderEvent(t *testing.T) {
	f := newSessionFixture(t)

	// Without a live instance the event has nowhere to go.
	err := f.svc.HandleProviderEvent(context.Background(), "user-1", provider.QRIssued{Code: "x"})
	assert.ErrorIs(t, err, ErrNoLiveInstance)

	qrSaved := make(chan struct{})
	f.sessionRepo.EXPECT().UpsertStatus(gomock.Any(), "user-1", models.SessionStatusConnecting).Return(nil)
	f.sessionRepo.EXPECT().SetQRCode(gomock.Any(), "user-1", "qr-relay").
		DoAndReturn(func(context.Context, string, string) error {
			close(qrSaved)
			return nil
		})

	_, err = f.svc.Initialize(context.Background(), "user-1")
	require.NoError(t, err)

	err = f.svc.HandleProviderEvent(context.Background(), "user-1", provider.QRIssued{Code: "qr-relay"})
	require.NoError(t, err)

	select {
	case <-qrSaved:
	case <-time.After(2 * time.Second):
		t.Fatal("injected event did not reach the event loop")
	}
}

func TestSessionService_GetStatus(t *testing.T) {
	f := newSessionFixture(t)

	// Missing row reads as disconnected.
	f.sessionRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").
		Return(nil, repository.ErrNotFound)

	result, err := f.svc.GetStatus(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusDisconnected, result.Status)

	// QR-bearing row returns both the payload and a rendered image.
	f.sessionRepo.EXPECT().GetByUserID(gomock.Any(), "user-2").
		Return(&models.Session{
			UserID: "user-2",
			Status: models.SessionStatusQRNeeded,
			QRCode: sql.NullString{String: "qr-data", Valid: true},
		}, nil)

	result, err = f.svc.GetStatus(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusQRNeeded, result.Status)
	assert.Equal(t, "qr-data", result.QRCode)
	assert.NotEmpty(t, result.QRCodeImage)
}
