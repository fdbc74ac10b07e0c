package router

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/formguard/internal/pkg/goerror"
)

// maxBodyBytes bounds every decoded request body.
const maxBodyBytes = 1 << 20

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// GetParam reads a path parameter from the request context (as stored by httprouter).
func (r *Request) GetParam(key string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(key)
}

// DecodeFields reads submitted form fields as strings. URL-encoded and
// multipart bodies keep the first value of each key. Any other body must be
// a JSON object whose values are strings, numbers, booleans or null; null
// becomes "". A malformed body is an invalid-format error and a nested value
// is an invalid-input error on its key.
func (r *Request) DecodeFields() (map[string]string, error) {
	if r == nil || r.Body == nil {
		return nil, goerror.NewInvalidFormat()
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return r.decodeFormFields(mediaType)
	default:
		return r.decodeJSONFields()
	}
}

func (r *Request) decodeFormFields(mediaType string) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	return fields, nil
}

func (r *Request) decodeJSONFields() (map[string]string, error) {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return nil, goerror.NewInvalidFormat()
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	fields := make(map[string]string, len(raw))
	for key, v := range raw {
		switch val := v.(type) {
		case string:
			fields[key] = val
		case json.Number:
			fields[key] = val.String()
		case bool:
			fields[key] = strconv.FormatBool(val)
		case nil:
			fields[key] = ""
		default:
			return nil, goerror.NewInvalidInput(nil, key, "Field "+strings.TrimSpace(key)+" must be a string")
		}
	}

	return fields, nil
}
