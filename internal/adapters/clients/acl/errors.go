// Package acl is the anti-corruption layer in front of the external places
// catalog. Wire formats live in the artic subpackage; this package owns the
// HTTP plumbing and the mapping of downstream failures to domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/travel-planner/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20

// errorBody covers both RFC 7807 problem documents and the catalog API's
// own {"status", "error", "detail"} error envelope.
type errorBody struct {
	Title  string        `json:"title"`
	Error  string        `json:"error"`
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a non-success catalog response to a domain error.
// 400 and 422 responses carrying field errors become a
// *domain.ValidationError; 5xx responses wrap domain.ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	eb := parseErrorBody(resp)

	detail := eb.message()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(eb.Errors) > 0 {
			return toValidationError(eb.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

func (e errorBody) message() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Error != "":
		return e.Error
	default:
		return e.Title
	}
}

// parseErrorBody reads a JSON error body. Anything unreadable yields the
// zero value.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return errorBody{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return errorBody{}
	}
	return eb
}

// toValidationError turns field errors into a domain ValidationError,
// dropping the "body." or "query." location prefix.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		field = strings.TrimPrefix(field, "query.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
