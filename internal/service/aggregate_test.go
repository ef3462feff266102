package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"feed_digest/internal/domain"
	"feed_digest/internal/service/mocks"
)

type ArticleAggregatorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	articles   *mocks.MockArticleStore
	aggregator *ArticleAggregator
	january    domain.DateRange
}

func (s *ArticleAggregatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.aggregator = NewArticleAggregator(s.articles, 100)
	s.january = domain.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (s *ArticleAggregatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestArticleAggregatorTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleAggregatorTestSuite))
}

func (s *ArticleAggregatorTestSuite) TestAggregate_NoContent() {
	ctx := context.Background()

	s.articles.EXPECT().ListByFeedsAndRange(ctx, []string{"f1"}, s.january, 100).Return(nil, nil)

	articles, err := s.aggregator.Aggregate(ctx, []string{"f1"}, s.january)

	s.Nil(articles)
	s.True(errors.Is(err, domain.ErrNoContent))
}

func (s *ArticleAggregatorTestSuite) TestAggregate_TruncatesToLimitMostRecentFirst() {
	ctx := context.Background()

	matching := make([]domain.Article, 150)
	for i := range matching {
		matching[i] = domain.Article{
			ID:          int64(i + 1),
			PublishedAt: s.january.Start.Add(time.Duration(i) * time.Hour),
		}
	}

	s.articles.EXPECT().ListByFeedsAndRange(ctx, []string{"f1", "f2"}, s.january, 100).Return(matching, nil)

	articles, err := s.aggregator.Aggregate(ctx, []string{"f1", "f2"}, s.january)

	s.NoError(err)
	s.Len(articles, 100)
	s.Equal(int64(150), articles[0].ID)
	s.Equal(int64(51), articles[99].ID)
	for i := 1; i < len(articles); i++ {
		s.False(articles[i].PublishedAt.After(articles[i-1].PublishedAt))
	}
}

func (s *ArticleAggregatorTestSuite) TestAggregate_OrdersDatesOutsideNanosecondRange() {
	ctx := context.Background()
	all := domain.DateRange{
		Start: time.Date(1000, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	s.articles.EXPECT().ListByFeedsAndRange(ctx, []string{"f1"}, all, 100).Return([]domain.Article{
		{ID: 1, PublishedAt: time.Date(1500, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, PublishedAt: time.Date(2500, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 3, PublishedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 4, PublishedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	articles, err := s.aggregator.Aggregate(ctx, []string{"f1"}, all)

	s.Require().NoError(err)
	s.Equal([]int64{2, 4, 3, 1}, []int64{articles[0].ID, articles[1].ID, articles[2].ID, articles[3].ID})
}

func (s *ArticleAggregatorTestSuite) TestAggregate_EndBeforeStart() {
	r := domain.DateRange{Start: s.january.End, End: s.january.Start}

	_, err := s.aggregator.Aggregate(context.Background(), []string{"f1"}, r)

	s.True(errors.Is(err, domain.ErrValidation))
}

func (s *ArticleAggregatorTestSuite) TestAggregate_SingleDayRange() {
	ctx := context.Background()
	day := domain.DateRange{Start: s.january.Start, End: s.january.Start}

	s.articles.EXPECT().ListByFeedsAndRange(ctx, []string{"f1"}, day, 100).
		Return([]domain.Article{{ID: 1, PublishedAt: s.january.Start}}, nil)

	articles, err := s.aggregator.Aggregate(ctx, []string{"f1"}, day)

	s.NoError(err)
	s.Len(articles, 1)
}

func (s *ArticleAggregatorTestSuite) TestCount_CappedAtLimit() {
	ctx := context.Background()

	s.articles.EXPECT().CountByFeedsAndRange(ctx, []string{"f1"}, s.january).Return(150, nil)

	n, err := s.aggregator.Count(ctx, []string{"f1"}, s.january)

	s.NoError(err)
	s.Equal(100, n)
}
