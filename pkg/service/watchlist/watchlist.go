// Package watchlist manages watchlists, enriches their items with market
// metrics and keeps item prices fresh.
package watchlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/watchlist"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Market is the market data the watchlist needs.
type Market interface {
	provider.Prices
	provider.Metrics
}

type Service struct {
	uow         repository.UnitOfWork
	market      Market
	concurrency int
	logger      *slog.Logger
}

func New(uow repository.UnitOfWork, market Market, concurrency int, logger *slog.Logger) *Service {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Service{uow: uow, market: market, concurrency: concurrency, logger: logger}
}

// ItemInput carries the editable fields of an item. A nil ListID puts the
// item on the default list.
type ItemInput struct {
	ListID *uuid.UUID
	Name   string
	Ticker string
	Target *decimal.Decimal
}

// CreateList adds a list. Titles are unique per user.
func (s *Service) CreateList(ctx context.Context, userID uuid.UUID, title, description string) (l *watchlist.List, err error) {
	log := s.logger.With("userID", userID, "title", title)
	log.Debug("CreateList called")
	l, err = watchlist.NewList(userID, title, description)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		existing, err := r.FindListByTitle(ctx, userID, l.Title)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("watchlist %q: %w", l.Title, domain.ErrAlreadyExists)
		}
		return r.CreateList(ctx, l)
	})
	if err != nil {
		log.Error("CreateList failed", "error", err)
		return nil, err
	}
	log.Info("CreateList successful", "listID", l.ID)
	return l, nil
}

// Lists returns the user's lists, each with its items.
func (s *Service) Lists(ctx context.Context, userID uuid.UUID) (lists []*watchlist.List, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		if lists, err = r.Lists(ctx, userID); err != nil {
			return err
		}
		items, err := r.Items(ctx, userID)
		if err != nil {
			return err
		}
		byList := make(map[uuid.UUID]*watchlist.List, len(lists))
		for _, l := range lists {
			byList[l.ID] = l
		}
		for _, it := range items {
			if l, ok := byList[it.ListID]; ok {
				l.Items = append(l.Items, it)
			}
		}
		return nil
	})
	return lists, err
}

// DeleteList removes a list and its items.
func (s *Service) DeleteList(ctx context.Context, userID, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := r.GetList(ctx, userID, id); err != nil {
			return err
		}
		return r.DeleteList(ctx, userID, id)
	})
	if err != nil {
		s.logger.Error("DeleteList failed", "listID", id, "error", err)
	}
	return err
}

// Items returns every item of the user, ordered by ticker.
func (s *Service) Items(ctx context.Context, userID uuid.UUID) (items []*watchlist.Item, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		items, err = r.Items(ctx, userID)
		return err
	})
	return items, err
}

// metrics fetches the enrichment data of ticker. Failures are logged and
// yield empty metrics.
func (s *Service) metrics(ctx context.Context, ticker string) watchlist.Metrics {
	m, err := s.market.Metrics(ctx, domain.NormalizeTicker(ticker))
	if err != nil {
		s.logger.Warn("Metrics lookup failed", "ticker", ticker, "error", err)
		return watchlist.Metrics{}
	}
	return m
}

// resolveList returns the list an item goes to, creating the default list
// on demand.
func resolveList(ctx context.Context, r repo.Repository, userID uuid.UUID, listID *uuid.UUID) (*watchlist.List, error) {
	if listID != nil {
		return r.GetList(ctx, userID, *listID)
	}
	l, err := r.FindListByTitle(ctx, userID, watchlist.DefaultListTitle)
	if err != nil || l != nil {
		return l, err
	}
	l, err = watchlist.NewList(userID, watchlist.DefaultListTitle, "")
	if err != nil {
		return nil, err
	}
	return l, r.CreateList(ctx, l)
}

func ensureUnique(ctx context.Context, r repo.Repository, it *watchlist.Item) error {
	exists, err := r.ItemExists(ctx, it.UserID, it.ListID, it.Ticker, it.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("ticker %s already in list: %w", it.Ticker, domain.ErrAlreadyExists)
	}
	return nil
}

// AddItem adds a ticker to a list and enriches it with market metrics.
func (s *Service) AddItem(ctx context.Context, userID uuid.UUID, in ItemInput) (it *watchlist.Item, err error) {
	log := s.logger.With("userID", userID, "ticker", in.Ticker)
	log.Debug("AddItem called")
	it, err = watchlist.NewItem(userID, uuid.Nil, in.Name, in.Ticker, in.Target)
	if err != nil {
		return nil, err
	}
	it.Enrich(s.metrics(ctx, it.Ticker))
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		l, err := resolveList(ctx, r, userID, in.ListID)
		if err != nil {
			return err
		}
		it.ListID = l.ID
		if err := ensureUnique(ctx, r, it); err != nil {
			return err
		}
		return r.CreateItem(ctx, it)
	})
	if err != nil {
		log.Error("AddItem failed", "error", err)
		return nil, err
	}
	log.Info("AddItem successful", "itemID", it.ID, "listID", it.ListID)
	return it, nil
}

// UpdateItem edits an item, optionally moving it to another list, and
// refreshes its metrics.
func (s *Service) UpdateItem(ctx context.Context, userID, id uuid.UUID, in ItemInput) (it *watchlist.Item, err error) {
	log := s.logger.With("userID", userID, "itemID", id)
	log.Debug("UpdateItem called")
	m := s.metrics(ctx, in.Ticker)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		if it, err = r.GetItem(ctx, userID, id); err != nil {
			return err
		}
		if in.ListID != nil && *in.ListID != it.ListID {
			l, err := r.GetList(ctx, userID, *in.ListID)
			if err != nil {
				return err
			}
			it.ListID = l.ID
		}
		if err := it.Apply(in.Name, in.Ticker, in.Target); err != nil {
			return err
		}
		if err := ensureUnique(ctx, r, it); err != nil {
			return err
		}
		it.Enrich(m)
		return r.UpdateItem(ctx, it)
	})
	if err != nil {
		log.Error("UpdateItem failed", "error", err)
		return nil, err
	}
	log.Info("UpdateItem successful")
	return it, nil
}

// DeleteItem removes an item.
func (s *Service) DeleteItem(ctx context.Context, userID, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := r.GetItem(ctx, userID, id); err != nil {
			return err
		}
		return r.DeleteItem(ctx, userID, id)
	})
	if err != nil {
		s.logger.Error("DeleteItem failed", "itemID", id, "error", err)
	}
	return err
}

// RefreshPrices quotes every item of the user and re-evaluates its signal.
func (s *Service) RefreshPrices(ctx context.Context, userID uuid.UUID) ([]*watchlist.Item, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	return items, s.refresh(ctx, items)
}

// RefreshAll quotes the items of every user. It returns how many were updated.
func (s *Service) RefreshAll(ctx context.Context) (int, error) {
	var items []*watchlist.Item
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		items, err = r.AllItems(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}
	if err := s.refresh(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *Service) refresh(ctx context.Context, items []*watchlist.Item) error {
	if len(items) == 0 {
		return nil
	}
	tickers := make(map[string]*decimal.Decimal)
	for _, it := range items {
		tickers[it.Ticker] = nil
	}
	keys := make([]string, 0, len(tickers))
	for t := range tickers {
		keys = append(keys, t)
	}
	quotes := make([]*decimal.Decimal, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, ticker := range keys {
		g.Go(func() error {
			q, err := s.market.CurrentPrice(gctx, ticker)
			if err != nil {
				s.logger.Warn("Watchlist quote failed", "ticker", ticker, "error", err)
				return nil
			}
			quotes[i] = q
			return nil
		})
	}
	_ = g.Wait()
	for i, t := range keys {
		tickers[t] = quotes[i]
	}

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		for _, it := range items {
			if !it.SetPrice(tickers[it.Ticker]) {
				continue
			}
			if err := r.UpdateItem(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Watchlist refresh failed", "error", err)
		return err
	}
	s.logger.Info("Watchlist refresh successful", "items", len(items), "tickers", len(keys))
	return nil
}
