package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/fraud-shield/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    responseMessage(resp),
	}
}

func statusKind(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var msg models.MessageResponse
	if err := json.Unmarshal([]byte(body), &msg); err == nil && msg.Message != "" {
		return msg.Message
	}

	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
