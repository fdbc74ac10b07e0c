package identity

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/formguard/internal/pkg/clock"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/messaging"
	"github.com/shandysiswandi/formguard/internal/pkg/router"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	t.Run("missing dependencies", func(t *testing.T) {
		err := New(Dependency{Validator: v})

		var verr validator.V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Values(), "router")
		assert.Contains(t, verr.Values(), "messaging")
	})

	t.Run("registers endpoints and publishes", func(t *testing.T) {
		cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  identity:\n    pin_key_length: 4\n"))
		require.NoError(t, err)

		ins := instrument.NewNoop()
		r := router.NewRouter(router.Config{Instrument: ins})
		pub := messaging.NewNoop()
		gm := goroutine.NewManager(4)

		require.NoError(t, New(Dependency{
			Goroutine:  gm,
			Router:     r,
			Messaging:  pub,
			Config:     cfg,
			Instrument: ins,
			Clock:      clock.New(),
			Validator:  v,
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/identity/register", strings.NewReader(`{
			"email": "jane@example.com", "firstname": "Jane", "lastname": "Doe",
			"phone": "1234-567-8901", "password": "Abc123!x", "confirm_password": "Abc123!x",
			"pin_key": "abcd"
		}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.NoError(t, gm.Wait())
		assert.EqualValues(t, 1, pub.Published())
	})
}
