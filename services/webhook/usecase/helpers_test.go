package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/gamestore-webhook/internal/pkg/logger"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	"github.com/piresc/gamestore-webhook/services/webhook/mocks"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 14, 0, 0, 0, time.Local)

func init() {
	logger.SetGlobalLogger(logger.NewNopLogger())
}

type testDeps struct {
	repo *mocks.MockWebhookRepo
	mail *mocks.MockMailGW
	cfg  *models.Config
	uc   *WebhookUC
}

func newTestUC(t *testing.T, store string) *testDeps {
	ctrl := gomock.NewController(t)

	cfg := &models.Config{}
	cfg.AuthCode.Store = store
	cfg.AuthCode.TTL = 3 * time.Minute

	repo := mocks.NewMockWebhookRepo(ctrl)
	mail := mocks.NewMockMailGW(ctrl)
	uc := NewWebhookUC(repo, mail, cfg)
	uc.now = func() time.Time { return fixedNow }

	return &testDeps{repo: repo, mail: mail, cfg: cfg, uc: uc}
}

// paramsJSON renders the session parameter update the way the platform receives it
func paramsJSON(t *testing.T, resp *models.WebhookResponse) string {
	t.Helper()
	data, err := json.Marshal(resp.SessionInfo.Parameters)
	require.NoError(t, err)
	return string(data)
}
