package inbound

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shandysiswandi/formguard/internal/identity/usecase"
	"github.com/shandysiswandi/formguard/internal/pkg/clock"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/router"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	ins := instrument.NewNoop()
	r := router.NewRouter(router.Config{Instrument: ins})
	RegisterHTTPEndpoint(r, usecase.New(usecase.Dependency{
		Validator:  v,
		Clock:      clock.New(),
		Instrument: ins,
	}))

	return r
}

func post(h http.Handler, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const validRegistrationJSON = `{
	"email": "jane@example.com",
	"firstname": "Jane",
	"lastname": "Doe",
	"phone": "1234-567-8901",
	"password": "Abc123!x",
	"confirm_password": "Abc123!x",
	"pin_key": "0123456789abcdef0123456789abcdef"
}`

func TestHTTPEndpoint_Register(t *testing.T) {
	h := newTestServer(t)

	t.Run("valid", func(t *testing.T) {
		rec := post(h, "/api/v1/identity/register", "application/json", validRegistrationJSON)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Registration form is valid.","data":{}}`, rec.Body.String())
	})

	t.Run("invalid fields", func(t *testing.T) {
		fields := map[string]string{}
		require.NoError(t, json.Unmarshal([]byte(validRegistrationJSON), &fields))
		fields["phone"] = "123-456-7890"
		fields["confirm_password"] = "Abc123!y"
		body, err := json.Marshal(fields)
		require.NoError(t, err)

		rec := post(h, "/api/v1/identity/register", "application/json", string(body))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{
			"message": "Validation error",
			"error": {
				"phone": "Phone number must be in correct format XXXX-XXX-XXXX",
				"confirm_password": "Both password fields must be equal!"
			}
		}`, rec.Body.String())
	})

	t.Run("url encoded", func(t *testing.T) {
		form := url.Values{
			"email":            {"jane@example.com"},
			"firstname":        {"Jane"},
			"lastname":         {"Doe"},
			"phone":            {"1234-567-8901"},
			"password":         {"Abc*23!x"},
			"confirm_password": {"Abc*23!x"},
			"pin_key":          {strings.Repeat("k", 32)},
		}

		rec := post(h, "/api/v1/identity/register", "application/x-www-form-urlencoded", form.Encode())
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"message":"Validation error","error":{"password":"Character * is not allowed."}}`, rec.Body.String())
	})

	t.Run("multipart", func(t *testing.T) {
		fields := map[string]string{}
		require.NoError(t, json.Unmarshal([]byte(validRegistrationJSON), &fields))

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		for k, v := range fields {
			require.NoError(t, mw.WriteField(k, v))
		}
		require.NoError(t, mw.Close())

		rec := post(h, "/api/v1/identity/register", mw.FormDataContentType(), body.String())
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Registration form is valid.","data":{}}`, rec.Body.String())
	})

	t.Run("nested value", func(t *testing.T) {
		rec := post(h, "/api/v1/identity/register", "application/json", `{"email":["jane@example.com"]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"message":"Validation error","error":{"email":"Field email must be a string"}}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := post(h, "/api/v1/identity/register", "application/json", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPEndpoint_Login(t *testing.T) {
	h := newTestServer(t)

	rec := post(h, "/api/v1/identity/login", "application/json", `{"email":"jane@example.com","password":"x","pin_key":"y"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Login form is valid.","data":{}}`, rec.Body.String())

	rec = post(h, "/api/v1/identity/login", "application/json", `{"email":"  "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"message": "Validation error",
		"error": {
			"email": "Email is a required field",
			"password": "Password is a required field",
			"pin_key": "pin key is a required field"
		}
	}`, rec.Body.String())
}

func TestHTTPEndpoint_Validate(t *testing.T) {
	h := newTestServer(t)

	rec := post(h, "/api/v1/identity/forms/login/validate", "application/json", `{"email":"nope","password":"x"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Form has been validated",
		"data": {
			"form": "Login",
			"valid": false,
			"fields": {
				"email": {"valid": false, "violation": "FormatMismatch", "message": "Email must be a valid email address"},
				"password": {"valid": true},
				"pin_key": {"valid": false, "violation": "RequiredFieldMissing", "message": "pin key is a required field"}
			}
		}
	}`, rec.Body.String())

	rec = post(h, "/api/v1/identity/forms/Register/validate", "application/json", validRegistrationJSON)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)

	rec = post(h, "/api/v1/identity/forms/profile/validate", "application/json", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Unknown form"}`, rec.Body.String())
}
