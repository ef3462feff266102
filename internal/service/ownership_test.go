package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"feed_digest/internal/domain"
	"feed_digest/internal/service/mocks"
)

type OwnershipValidatorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	feeds     *mocks.MockFeedStore
	validator *OwnershipValidator
}

func (s *OwnershipValidatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.feeds = mocks.NewMockFeedStore(s.ctrl)
	s.validator = NewOwnershipValidator(s.feeds)
}

func (s *OwnershipValidatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOwnershipValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(OwnershipValidatorTestSuite))
}

func (s *OwnershipValidatorTestSuite) TestValidate_AllOwnedDeduplicates() {
	ctx := context.Background()

	s.feeds.EXPECT().ListOwnedIDs(ctx, domain.TenantID("tenant-a"), []string{"f1", "f2"}).
		Return([]string{"f2", "f1"}, nil)

	ids, err := s.validator.Validate(ctx, "tenant-a", []string{"f1", "f2", "f1"})

	s.NoError(err)
	s.Equal([]string{"f1", "f2"}, ids)
}

func (s *OwnershipValidatorTestSuite) TestValidate_RejectsWholeRequestOnForeignID() {
	ctx := context.Background()

	s.feeds.EXPECT().ListOwnedIDs(ctx, domain.TenantID("tenant-a"), []string{"f1", "other", "ghost"}).
		Return([]string{"f1"}, nil)

	ids, err := s.validator.Validate(ctx, "tenant-a", []string{"f1", "other", "ghost"})

	s.Nil(ids)
	s.True(errors.Is(err, domain.ErrUnauthorized))

	var unauthorized *domain.UnauthorizedFeedsError
	s.Require().True(errors.As(err, &unauthorized))
	s.Equal([]string{"other", "ghost"}, unauthorized.FeedIDs)
	s.Contains(err.Error(), "other, ghost")
}

func (s *OwnershipValidatorTestSuite) TestValidate_EmptyListIsValidationError() {
	ids, err := s.validator.Validate(context.Background(), "tenant-a", nil)

	s.Nil(ids)
	s.True(errors.Is(err, domain.ErrValidation))
}

func (s *OwnershipValidatorTestSuite) TestValidate_BlankIDFailsWholeRequest() {
	tests := []struct {
		name string
		ids  []string
	}{
		{name: "empty among owned", ids: []string{"f1", ""}},
		{name: "whitespace", ids: []string{"  ", "f1"}},
		{name: "only blanks", ids: []string{"", ""}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ids, err := s.validator.Validate(context.Background(), "tenant-a", tt.ids)

			s.Nil(ids)
			s.True(errors.Is(err, domain.ErrValidation))
		})
	}
}

func (s *OwnershipValidatorTestSuite) TestValidate_StoreError() {
	ctx := context.Background()

	s.feeds.EXPECT().ListOwnedIDs(ctx, domain.TenantID("tenant-a"), []string{"f1"}).
		Return(nil, errors.New("connection refused"))

	_, err := s.validator.Validate(ctx, "tenant-a", []string{"f1"})

	s.Error(err)
	s.Contains(err.Error(), "validate feed ownership")
	s.False(errors.Is(err, domain.ErrUnauthorized))
}
