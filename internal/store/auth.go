package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Token is the JSON shape of the credential endpoint. The endpoint may
// instead return the token as a bare text/plain body.
type Token struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// RequestToken obtains a bearer credential from the credential endpoint.
// The endpoint is POSTed an empty JSON body and may answer with either a
// plain-text token (trimmed) or a JSON object carrying the token under
// "accessToken" or "token". Tokens are not cached; callers request a fresh
// one before every data request.
func RequestToken(ctx context.Context, r *resty.Client, tokenURL string) (string, error) {
	slog.Debug("requesting access token", "url", tokenURL)

	response, err := r.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{}).
		Post(tokenURL)
	if err != nil {
		return "", errors.WithMessage(err, ErrorRequestingToken)
	}

	statusCode := response.StatusCode()
	body := response.Body()
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return "", &AuthError{StatusCode: statusCode, Body: string(body)}
	}

	token, err := parseToken(response.Header().Get("Content-Type"), body)
	if err != nil {
		return "", err
	}

	slog.Debug("access token acquired")
	return token, nil
}

// parseToken extracts the token from either supported body shape.
func parseToken(contentType string, body []byte) (string, error) {
	if strings.HasPrefix(contentType, "application/json") {
		var t Token
		if err := json.Unmarshal(body, &t); err != nil {
			return "", &AuthError{Reason: "invalid JSON token body: " + err.Error()}
		}
		if t.AccessToken != "" {
			return t.AccessToken, nil
		}
		if t.Token != "" {
			return t.Token, nil
		}
		return "", &AuthError{Reason: "token response carries no token field"}
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", &AuthError{Reason: "empty token body"}
	}
	return token, nil
}
