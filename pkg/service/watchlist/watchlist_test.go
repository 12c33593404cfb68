package watchlist_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/alphaquantum/internal/fixtures"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	watchlistsvc "github.com/amirasaad/alphaquantum/pkg/service/watchlist"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WatchlistServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	uow    repository.UnitOfWork
	market *fixtures.MockMarketData
	svc    *watchlistsvc.Service
	userID uuid.UUID
}

func (s *WatchlistServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow, _ = fixtures.NewUoW(s.T())
	s.market = &fixtures.MockMarketData{}
	s.svc = watchlistsvc.New(s.uow, s.market, 2, fixtures.Logger())
	s.userID = fixtures.CreateUser(s.T(), s.uow, "ana")
}

func (s *WatchlistServiceTestSuite) TestAddItemCreatesDefaultList() {
	s.market.On("Metrics", mock.Anything, "NVDA").Return(watchlist.Metrics{
		Price:   fixtures.Price("100"),
		PE:      fixtures.Price("55.1"),
		High52W: fixtures.Price("140"),
		Low52W:  fixtures.Price("60"),
	}, nil)

	it, err := s.svc.AddItem(s.ctx, s.userID, watchlistsvc.ItemInput{Ticker: "nvda", Target: fixtures.Price("125")})
	s.Require().NoError(err)
	s.Equal("NVDA", it.Name)
	s.Equal("25", it.Upside.String())
	s.Equal(watchlist.Buy, *it.Recommendation)
	s.Equal("55.1", it.PE.String())

	lists, err := s.svc.Lists(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(lists, 1)
	s.Equal(watchlist.DefaultListTitle, lists[0].Title)
	s.Require().Len(lists[0].Items, 1)
	s.Equal(it.ID, lists[0].Items[0].ID)

	_, err = s.svc.AddItem(s.ctx, s.userID, watchlistsvc.ItemInput{Ticker: "NVDA"})
	s.ErrorIs(err, domain.ErrAlreadyExists)

	lists, err = s.svc.Lists(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Len(lists, 1)
}

func (s *WatchlistServiceTestSuite) TestMetricsFailureStillAdds() {
	s.market.On("Metrics", mock.Anything, "ASML").Return(watchlist.Metrics{}, provider.ErrNotConfigured)

	it, err := s.svc.AddItem(s.ctx, s.userID, watchlistsvc.ItemInput{Name: "ASML Holding", Ticker: "asml", Target: fixtures.Price("900")})
	s.Require().NoError(err)
	s.Nil(it.CurrentPrice)
	s.Nil(it.Upside)
	s.Nil(it.Recommendation)
}

func (s *WatchlistServiceTestSuite) TestListsAndUpdate() {
	tech, err := s.svc.CreateList(s.ctx, s.userID, "Tech", "chips")
	s.Require().NoError(err)
	_, err = s.svc.CreateList(s.ctx, s.userID, "Tech", "")
	s.ErrorIs(err, domain.ErrAlreadyExists)
	other, err := s.svc.CreateList(s.ctx, s.userID, "Other", "")
	s.Require().NoError(err)

	s.market.On("Metrics", mock.Anything, mock.Anything).Return(watchlist.Metrics{Price: fixtures.Price("50")}, nil)

	amd, err := s.svc.AddItem(s.ctx, s.userID, watchlistsvc.ItemInput{ListID: &tech.ID, Ticker: "AMD", Target: fixtures.Price("52")})
	s.Require().NoError(err)
	s.Equal(watchlist.Review, *amd.Recommendation)
	_, err = s.svc.AddItem(s.ctx, s.userID, watchlistsvc.ItemInput{ListID: &other.ID, Ticker: "AMD"})
	s.Require().NoError(err, "the same ticker may appear in another list")
	_, err = s.svc.AddItem(s.ctx, s.userID, watchlistsvc.ItemInput{ListID: &tech.ID, Ticker: "INTC"})
	s.Require().NoError(err)

	s.Run("moving onto a duplicate fails", func() {
		_, err := s.svc.UpdateItem(s.ctx, s.userID, amd.ID, watchlistsvc.ItemInput{ListID: &other.ID, Ticker: "AMD"})
		s.ErrorIs(err, domain.ErrAlreadyExists)
	})

	s.Run("edit target", func() {
		it, err := s.svc.UpdateItem(s.ctx, s.userID, amd.ID, watchlistsvc.ItemInput{Ticker: "AMD", Target: fixtures.Price("40")})
		s.Require().NoError(err)
		s.Equal("-20", it.Upside.String())
		s.Equal(watchlist.Wait, *it.Recommendation)
	})

	s.Run("ownership", func() {
		bob := fixtures.CreateUser(s.T(), s.uow, "bob")
		s.ErrorIs(s.svc.DeleteItem(s.ctx, bob, amd.ID), domain.ErrNotFound)
		s.ErrorIs(s.svc.DeleteList(s.ctx, bob, tech.ID), domain.ErrNotFound)
	})

	s.Require().NoError(s.svc.DeleteList(s.ctx, s.userID, tech.ID))
	items, err := s.svc.Items(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(other.ID, items[0].ListID)
}

func (s *WatchlistServiceTestSuite) TestRefreshPrices() {
	s.market.On("Metrics", mock.Anything, mock.Anything).Return(watchlist.Metrics{Price: fixtures.Price("100")}, nil)
	_, err := s.svc.AddItem(s.ctx, s.userID, watchlistsvc.ItemInput{Ticker: "KO", Target: fixtures.Price("105")})
	s.Require().NoError(err)
	_, err = s.svc.AddItem(s.ctx, s.userID, watchlistsvc.ItemInput{Ticker: "PEP", Target: fixtures.Price("105")})
	s.Require().NoError(err)

	s.market.On("CurrentPrice", mock.Anything, "KO").Return(fixtures.Price("90"), nil)
	s.market.On("CurrentPrice", mock.Anything, "PEP").Return(nil, errors.New("timeout"))

	items, err := s.svc.RefreshPrices(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(items, 2)

	stored, err := s.svc.Items(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal("KO", stored[0].Ticker)
	s.Equal("90", stored[0].CurrentPrice.String())
	s.Equal(watchlist.Buy, *stored[0].Recommendation)
	s.Equal("100", stored[1].CurrentPrice.String())

	n, err := s.svc.RefreshAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)
}

func TestWatchlistServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WatchlistServiceTestSuite))
}
