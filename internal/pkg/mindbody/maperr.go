package mindbody

import (
	"errors"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
)

// MapError converts client errors into the application error taxonomy so
// inbound layers render the right status code without message sniffing.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrRateLimited) {
		return goerror.NewBusiness("Too many requests, please try again shortly", goerror.CodeTooManyRequest)
	}

	if IsNotFound(err) {
		return goerror.NewBusiness("Requested resource was not found", goerror.CodeNotFound)
	}

	return goerror.NewServer(err)
}
