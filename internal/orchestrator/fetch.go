package orchestrator

import (
	"context"
	"fmt"
	"time"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/interfaces"
	"scaffer/internal/output"
)

// spinnerFetcher shows a spinner while the wrapped fetcher downloads
type spinnerFetcher struct {
	inner   interfaces.IgnoreFetcher
	timeout time.Duration
}

func (f *spinnerFetcher) Fetch(ctx context.Context, identifier string) (string, error) {
	// The spinner may give up on the action before it returns, so the body
	// only travels through the channel.
	bodies := make(chan string, 1)
	err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		body, err := f.inner.Fetch(ctx, identifier)
		if err != nil {
			return err
		}
		bodies <- body
		return nil
	},
		output.WithTitle(fmt.Sprintf("Fetching .gitignore for %s...", identifier)),
		output.WithTimeout(f.timeout),
	)
	if err != nil {
		if !scerrors.IsKind(err, scerrors.ErrFetchFailure) {
			err = scerrors.FetchFailure(identifier, "", err)
		}
		return "", err
	}
	return <-bodies, nil
}
