package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/mock"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

func newTestListingService(t *testing.T) (ListingService, *mock.MockHostAdapter, *mock.MockUsageRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	host := mock.NewMockHostAdapter(ctrl)
	usage := mock.NewMockUsageRepository(ctrl)
	cfg := config.AgentConfig{
		Stores: map[string]models.Store{
			"personal": {ID: "personal", Name: "Personal"},
		},
	}

	return NewListingService(host, usage, cfg, logger.Nop()), host, usage
}

func TestListingService_Candidates(t *testing.T) {
	svc, host, usage := newTestListingService(t)
	ctx := context.Background()
	pageOrigin := "https://example.com"

	host.EXPECT().List(ctx).Return(models.HostListData{
		Files: map[string][]string{
			"personal": {
				"example.com/alice.gpg",
				"notes.txt", // not an entry file
				"other.org/bob.gpg",
			},
		},
	}, nil)

	aliceKey := utils.UsageKey(pageOrigin, "personal", "example.com/alice")
	bobKey := utils.UsageKey(pageOrigin, "personal", "other.org/bob")
	usage.EXPECT().
		GetBatch(ctx, []string{aliceKey, bobKey}).
		Return(map[string]models.UsageRecord{
			aliceKey: {When: time.Now().UnixMilli(), Count: 3},
		}, nil)

	got, err := svc.Candidates(ctx, pageOrigin, "", false)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "example.com/alice", got[0].Login)
	assert.Equal(t, "Personal", got[0].StoreName)
	assert.Equal(t, "example.com", got[0].Host)
	assert.True(t, got[0].InCurrentHost)
	assert.Equal(t, 3, got[0].Recent.Count)

	assert.Equal(t, "other.org/bob", got[1].Login)
	assert.False(t, got[1].InCurrentHost)
}

func TestListingService_Candidates_InvalidOrigin(t *testing.T) {
	svc, _, _ := newTestListingService(t)

	_, err := svc.Candidates(context.Background(), "://not-an-origin", "", false)
	assert.ErrorIs(t, err, ErrInvalidOrigin)
}

func TestListingService_Candidates_ListError(t *testing.T) {
	svc, host, _ := newTestListingService(t)
	ctx := context.Background()

	listErr := errors.New("helper unreachable")
	host.EXPECT().List(ctx).Return(models.HostListData{}, listErr)

	_, err := svc.Candidates(ctx, "https://example.com", "", false)
	assert.ErrorIs(t, err, listErr)
}

func TestListingService_Candidates_CurrentDomainOnly(t *testing.T) {
	svc, host, usage := newTestListingService(t)
	ctx := context.Background()
	pageOrigin := "https://example.com"

	host.EXPECT().List(ctx).Return(models.HostListData{
		Files: map[string][]string{
			"personal": {"example.com/alice.gpg", "other.org/bob.gpg"},
		},
	}, nil)
	usage.EXPECT().GetBatch(ctx, gomock.Any()).Return(map[string]models.UsageRecord{}, nil)

	got, err := svc.Candidates(ctx, pageOrigin, "", true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "example.com/alice", got[0].Login)
}
