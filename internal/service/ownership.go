package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"feed_digest/internal/domain"
)

// OwnershipValidator filters requested feed ids down to those the tenant owns,
// rejecting the whole request if any id is foreign or unknown.
type OwnershipValidator struct {
	feeds FeedStore
}

func NewOwnershipValidator(feeds FeedStore) *OwnershipValidator {
	return &OwnershipValidator{feeds: feeds}
}

// Validate returns the de-duplicated requested ids, in request order.
func (v *OwnershipValidator) Validate(ctx context.Context, tenantID domain.TenantID, feedIDs []string) ([]string, error) {
	if len(feedIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one feed id is required", domain.ErrValidation)
	}
	if lo.ContainsBy(feedIDs, func(id string) bool { return strings.TrimSpace(id) == "" }) {
		return nil, fmt.Errorf("%w: feed ids must not be blank", domain.ErrValidation)
	}

	requested := lo.Uniq(feedIDs)

	owned, err := v.feeds.ListOwnedIDs(ctx, tenantID, requested)
	if err != nil {
		return nil, fmt.Errorf("validate feed ownership: %w", err)
	}

	unauthorized := lo.Without(requested, owned...)
	if len(unauthorized) > 0 {
		return nil, &domain.UnauthorizedFeedsError{FeedIDs: unauthorized}
	}

	return requested, nil
}
