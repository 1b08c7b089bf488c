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
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository/mocks"
)

type campaignFixture struct {
	campaignRepo *mocks.MockCampaignRepository
	clienteRepo  *mocks.MockClienteRepository
	templateRepo *mocks.MockTemplateRepository
	logRepo      *mocks.MockMessageLogRepository
	adapter      *fakeAdapter
	svc          *campaignService
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	ctrl := gomock.NewController(t)

	f := &campaignFixture{
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		clienteRepo:  mocks.NewMockClienteRepository(ctrl),
		templateRepo: mocks.NewMockTemplateRepository(ctrl),
		logRepo:      mocks.NewMockMessageLogRepository(ctrl),
		adapter:      newFakeAdapter(),
	}

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Campaign().Return(f.campaignRepo).AnyTimes()
	repo.EXPECT().Cliente().Return(f.clienteRepo).AnyTimes()
	repo.EXPECT().Template().Return(f.templateRepo).AnyTimes()
	repo.EXPECT().MessageLog().Return(f.logRepo).AnyTimes()

	f.svc = NewCampaignService(testConfig(), repo, f.adapter, zap.NewNop()).(*campaignService)
	return f
}

func TestCampaignService_Run_CounterInvariant(t *testing.T) {
	f := newCampaignFixture(t)

	campaign := &models.BulkCampaign{
		ID:             10,
		UserID:         "user-1",
		Status:         models.CampaignStatusScheduled,
		MessageContent: sql.NullString{String: "Oi {nome}", Valid: true},
	}

	recipients := []*models.Cliente{
		{ID: 1, Nome: "Ana", Telefone: "5511999990001"},
		{ID: 2, Nome: "Bia", Telefone: ""},
		{ID: 3, Nome: "Caio", Telefone: "5511999990003"},
	}
	f.adapter.failFor["5511999990003"] = true

	f.clienteRepo.EXPECT().ListByFilter(gomock.Any(), "user-1", gomock.Any()).Return(recipients, nil)
	f.campaignRepo.EXPECT().MarkRunning(gomock.Any(), int64(10), 3, gomock.Any()).Return(nil)
	f.campaignRepo.EXPECT().UpdateCounters(gomock.Any(), int64(10), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.campaignRepo.EXPECT().MarkCompleted(gomock.Any(), int64(10), 1, 1, gomock.Any()).Return(nil)
	f.logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := f.svc.Run(context.Background(), campaign)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRecipients)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, result.TotalRecipients, result.SentCount+result.FailedCount+result.SkippedCount)

	calls := f.adapter.sentCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "Oi Ana", calls[0].Text)
}

func TestCampaignService_Run_NotRunnable(t *testing.T) {
	f := newCampaignFixture(t)

	campaign := &models.BulkCampaign{ID: 11, Status: models.CampaignStatusRunning}

	_, err := f.svc.Run(context.Background(), campaign)
	assert.ErrorIs(t, err, ErrCampaignNotRunnable)
}

func TestCampaignService_Run_MissingContentMarksFailed(t *testing.T) {
	f := newCampaignFixture(t)

	campaign := &models.BulkCampaign{ID: 12, UserID: "user-1", Status: models.CampaignStatusScheduled}

	f.campaignRepo.EXPECT().MarkFailed(gomock.Any(), int64(12)).Return(nil)

	_, err := f.svc.Run(context.Background(), campaign)
	assert.ErrorIs(t, err, ErrCampaignMissingContent)
}

func TestCampaignService_Run_TemplateBody(t *testing.T) {
	f := newCampaignFixture(t)

	campaign := &models.BulkCampaign{
		ID:         13,
		UserID:     "user-1",
		Status:     models.CampaignStatusScheduled,
		TemplateID: sql.NullInt64{Int64: 5, Valid: true},
	}

	f.templateRepo.EXPECT().GetByID(gomock.Any(), "user-1", int64(5)).
		Return(&models.MessageTemplate{ID: 5, BodyText: "Promoção para {nome}!"}, nil)
	f.clienteRepo.EXPECT().ListByFilter(gomock.Any(), "user-1", gomock.Any()).
		Return([]*models.Cliente{{ID: 1, Nome: "Ana", Telefone: "5511999990001"}}, nil)
	f.campaignRepo.EXPECT().MarkRunning(gomock.Any(), int64(13), 1, gomock.Any()).Return(nil)
	f.campaignRepo.EXPECT().UpdateCounters(gomock.Any(), int64(13), 1, 0).Return(nil)
	f.campaignRepo.EXPECT().MarkCompleted(gomock.Any(), int64(13), 1, 0, gomock.Any()).Return(nil)

	var logged *models.MessageLog
	f.logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.MessageLog) error {
			logged = l
			return nil
		})

	result, err := f.svc.Run(context.Background(), campaign)
	require.NoError(t, err)

	assert.Equal(t, 1, result.SentCount)
	require.NotNil(t, logged)
	assert.Equal(t, "Promoção para Ana!", logged.Content)
	assert.Equal(t, int64(13), logged.CampaignID.Int64)
	assert.Equal(t, int64(5), logged.TemplateID.Int64)
}

func TestCampaignService_Run_PacingBetweenRecipients(t *testing.T) {
	f := newCampaignFixture(t)

	var slept []time.Duration
	f.svc.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	campaign := &models.BulkCampaign{
		ID:              14,
		UserID:          "user-1",
		Status:          models.CampaignStatusScheduled,
		MessageContent:  sql.NullString{String: "Oi", Valid: true},
		SendIntervalMin: 30,
		SendIntervalMax: 90,
	}

	recipients := []*models.Cliente{
		{ID: 1, Telefone: "5511999990001"},
		{ID: 2, Telefone: "5511999990002"},
		{ID: 3, Telefone: "5511999990003"},
	}

	f.clienteRepo.EXPECT().ListByFilter(gomock.Any(), "user-1", gomock.Any()).Return(recipients, nil)
	f.campaignRepo.EXPECT().MarkRunning(gomock.Any(), int64(14), 3, gomock.Any()).Return(nil)
	f.campaignRepo.EXPECT().UpdateCounters(gomock.Any(), int64(14), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.campaignRepo.EXPECT().MarkCompleted(gomock.Any(), int64(14), 3, 0, gomock.Any()).Return(nil)
	f.logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	_, err := f.svc.Run(context.Background(), campaign)
	require.NoError(t, err)

	// One pause between each consecutive pair, never after the last.
	require.Len(t, slept, 2)
	for _, d := range slept {
		assert.GreaterOrEqual(t, d, 30*time.Second)
		assert.LessOrEqual(t, d, 90*time.Second)
	}
}

func TestCampaignService_Run_CancellationMarksFailed(t *testing.T) {
	f := newCampaignFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	f.svc.sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	campaign := &models.BulkCampaign{
		ID:              15,
		UserID:          "user-1",
		Status:          models.CampaignStatusScheduled,
		MessageContent:  sql.NullString{String: "Oi", Valid: true},
		SendIntervalMin: 1,
		SendIntervalMax: 1,
	}

	recipients := []*models.Cliente{
		{ID: 1, Telefone: "5511999990001"},
		{ID: 2, Telefone: "5511999990002"},
	}

	f.clienteRepo.EXPECT().ListByFilter(gomock.Any(), "user-1", gomock.Any()).Return(recipients, nil)
	f.campaignRepo.EXPECT().MarkRunning(gomock.Any(), int64(15), 2, gomock.Any()).Return(nil)
	f.campaignRepo.EXPECT().UpdateCounters(gomock.Any(), int64(15), gomock.Any(), gomock.Any()).Return(nil)
	f.campaignRepo.EXPECT().MarkFailed(gomock.Any(), int64(15)).Return(nil)
	f.logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.svc.Run(ctx, campaign)
	require.Error(t, err)

	// The first recipient was already processed when the run was cut short.
	assert.Equal(t, 1, result.SentCount)
}

func TestCampaignService_Launch(t *testing.T) {
	f := newCampaignFixture(t)

	done := make(chan struct{})

	f.campaignRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.BulkCampaign) error {
			c.ID = 20
			return nil
		})
	f.clienteRepo.EXPECT().ListByFilter(gomock.Any(), "user-1", gomock.Any()).
		Return([]*models.Cliente{}, nil)
	f.campaignRepo.EXPECT().MarkRunning(gomock.Any(), int64(20), 0, gomock.Any()).Return(nil)
	f.campaignRepo.EXPECT().MarkCompleted(gomock.Any(), int64(20), 0, 0, gomock.Any()).
		DoAndReturn(func(context.Context, int64, int, int, time.Time) error {
			close(done)
			return nil
		})

	campaign, err := f.svc.Launch(context.Background(), "user-1", CampaignParams{
		Name:           "Black Friday",
		MessageContent: "Oferta!",
	})
	require.NoError(t, err)

	assert.Equal(t, models.CampaignStatusScheduled, campaign.Status)
	// Zero intervals fall back to the configured defaults.
	assert.Equal(t, 30, campaign.SendIntervalMin)
	assert.Equal(t, 90, campaign.SendIntervalMax)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached campaign run did not complete")
	}
}

func TestCampaignService_Launch_MissingContent(t *testing.T) {
	f := newCampaignFixture(t)

	_, err := f.svc.Launch(context.Background(), "user-1", CampaignParams{Name: "vazia"})
	assert.ErrorIs(t, err, ErrCampaignMissingContent)
}
