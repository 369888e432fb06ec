package tui

import (
	"errors"
	"fmt"

	"github.com/pders01/tubegram/internal/youtube"
)

// wrapErr formats an error with a contextual prefix.
func wrapErr(context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// searchErrorMessage is the text shown in the error slot for a failed search.
func searchErrorMessage(err error) string {
	var serr *youtube.SearchError
	if errors.As(err, &serr) && serr.Message != "" {
		return serr.Message
	}
	// Only Searchers other than youtube.Client return plain errors.
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return youtube.FallbackErrorMessage
}
