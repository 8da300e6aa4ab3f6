package layoutcmd

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-widgetlayout/widgets"
)

const (
	codeRefreshInvalid  = "LAYOUT_REFRESH_INVALID"
	codeRefreshDisabled = "LAYOUT_REFRESH_DISABLED"
	codeRefreshCanceled = "LAYOUT_REFRESH_CANCELED"
	codeRefreshTimeout  = "LAYOUT_REFRESH_TIMEOUT"
	codeRefreshFailed   = "LAYOUT_REFRESH_FAILED"
)

func invalidRefresh(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "layout refresh rejected").
		WithTextCode(codeRefreshInvalid)
}

// refreshFailure categorises a refresh error. Errors that already carry a
// go-errors category keep it.
func refreshFailure(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, widgets.ErrFeatureDisabled):
		return goerrors.Wrap(err, goerrors.CategoryNotFound, "layout refresh disabled").
			WithTextCode(codeRefreshDisabled)
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "layout refresh cancelled").
			WithTextCode(codeRefreshCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "layout refresh deadline exceeded").
			WithTextCode(codeRefreshTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "layout refresh failed").
			WithTextCode(codeRefreshFailed)
	}
}
