package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// backendMessageFields are the JSON fields the backend puts its message in.
var backendMessageFields = []string{"message", "error"}

func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &RequestError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Message:    backendMessage(resp.Body()),
		kind:       statusSentinel(resp.StatusCode()),
	}
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}

// backendMessage passes the backend's message through: the "message" or
// "error" field of a JSON body, otherwise the trimmed body itself.
func backendMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		for _, field := range backendMessageFields {
			if v := gjson.GetBytes(body, field); v.Type == gjson.String && v.Str != "" {
				return v.Str
			}
		}
	}
	return strings.TrimSpace(string(body))
}

func transportError(op string, err error) error {
	return &RequestError{Op: op, Message: err.Error(), kind: ErrNetwork, cause: err}
}

func malformedError(op string, resp *resty.Response, err error) error {
	return &RequestError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Message:    err.Error(),
		kind:       ErrMalformedResponse,
		cause:      err,
	}
}
