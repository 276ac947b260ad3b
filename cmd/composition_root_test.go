package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"granary/cmd"
	"granary/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCompositionRoot(t *testing.T) {
	t.Run("invalid capacities", func(t *testing.T) {
		_, err := cmd.NewCompositionRoot(cmd.Config{ContainerCapacity: 10, StorageCapacity: 5}, discardLogger())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing label file", func(t *testing.T) {
		_, err := cmd.NewCompositionRoot(cmd.Config{
			ContainerCapacity: 10,
			StorageCapacity:   25,
			GoodsLabelsFile:   filepath.Join(t.TempDir(), "absent.yaml"),
		}, discardLogger())

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestCompositionRoot_CreateRouter(t *testing.T) {
	labels := filepath.Join(t.TempDir(), "labels.yaml")
	require.NoError(t, os.WriteFile(labels, []byte("RICE: Basmati\n"), 0o600))

	config, err := cmd.LoadConfig(env(map[string]string{"GOODS_LABELS_FILE": labels}))
	require.NoError(t, err)

	app, err := cmd.NewCompositionRoot(config, discardLogger())
	require.NoError(t, err)

	router, err := app.CreateRouter()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/containers/RICE/goods", strings.NewReader(`{"amount": 3}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/storage/report", nil))
	assert.Equal(t, "Basmati: 3.0", rec.Body.String())
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	config, err := cmd.LoadConfig(env(map[string]string{"EMPTY_CONTAINER_SWEEP_SCHEDULE": "0 0 * * * *"}))
	require.NoError(t, err)
	app, err := cmd.NewCompositionRoot(config, discardLogger())
	require.NoError(t, err)

	manager := app.CreateJobManager()

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
