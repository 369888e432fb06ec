package youtube

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"google.golang.org/api/googleapi"
)

// FallbackErrorMessage is shown when the API rejects a request without saying why.
const FallbackErrorMessage = "Gagal mengambil data video."

var (
	ErrTransport         = errors.New("transport error")
	ErrAPI               = errors.New("api error")
	ErrMalformedResponse = errors.New("malformed response")
)

// ErrorKind classifies a failed search.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindAPI
	KindMalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindAPI:
		return ErrAPI
	case KindMalformedResponse:
		return ErrMalformedResponse
	default:
		return ErrTransport
	}
}

// SearchError is returned by Client.Search. Message is safe to show to the user.
type SearchError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *SearchError) Error() string {
	return e.Message
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Is lets callers match a SearchError against ErrTransport, ErrAPI or ErrMalformedResponse.
func (e *SearchError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// classifyError maps an error from the generated API client onto the taxonomy.
func classifyError(err error) *SearchError {
	var serr *SearchError
	if errors.As(err, &serr) {
		return serr
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := strings.TrimSpace(gerr.Message)
		if msg == "" {
			msg = FallbackErrorMessage
		}
		return &SearchError{Kind: KindAPI, StatusCode: gerr.Code, Message: msg, Err: err}
	}

	// url.Error carries the request URL, which includes the API key.
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return &SearchError{Kind: KindTransport, Message: uerr.Err.Error(), Err: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SearchError{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("malformed response: %v", err),
			Err:     err,
		}
	}

	return &SearchError{Kind: KindTransport, Message: err.Error(), Err: err}
}
