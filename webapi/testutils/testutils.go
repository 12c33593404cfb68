// Package testutils runs the full HTTP stack against an in-memory database
// for end-to-end handler tests.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/alphaquantum/infra/cache"
	"github.com/amirasaad/alphaquantum/infra/eventbus"
	"github.com/amirasaad/alphaquantum/internal/fixtures"
	"github.com/amirasaad/alphaquantum/pkg/app"
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/amirasaad/alphaquantum/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TestPassword is the password of every user made by CreateTestUser.
const TestPassword = "password123"

// E2ETestSuite serves the whole route table over a private SQLite database,
// a synchronous event bus and a scriptable market.
type E2ETestSuite struct {
	suite.Suite
	App    *app.App
	Fiber  *fiber.App
	DB     *gorm.DB
	Market *StubMarket
	Bus    *eventbus.MemoryEventBus
	cache  *cache.MemoryCache
}

// TestUser is a user registered through the API.
type TestUser struct {
	ID       uuid.UUID
	Username string
	Email    string
	Token    string
}

// Config is the application config used by the suite.
func Config() *config.App {
	return &config.App{
		Env:        "test",
		Auth:       &config.Auth{Strategy: "jwt", Jwt: &config.Jwt{Secret: "e2e-secret", Expiry: time.Hour}},
		RateLimit:  &config.RateLimit{MaxRequests: 100000, Window: time.Minute},
		QuoteCache: &config.QuoteCache{TTL: time.Minute, Prefix: "quote:"},
		MarketData: &config.MarketData{Concurrency: 2},
		Jobs:       &config.Jobs{SeriesDays: 30, BackfillDays: 7},
	}
}

// SetupTest builds a fresh application per test so tests never share rows.
func (s *E2ETestSuite) SetupTest() {
	uow, db := fixtures.NewUoW(s.T())
	s.DB = db
	s.Market = NewStubMarket()
	s.Bus = eventbus.NewWithMemory(fixtures.Logger())
	s.cache = cache.NewMemoryCache(0)
	s.App = app.New(&app.Deps{
		Uow:        uow,
		EventBus:   s.Bus,
		MarketData: s.Market,
		Cache:      s.cache,
		Logger:     fixtures.Logger(),
	}, Config())
	s.Fiber = webapi.SetupApp(s.App)
	log.SetOutput(io.Discard)
}

func (s *E2ETestSuite) TearDownTest() {
	if s.cache != nil {
		_ = s.cache.Close()
	}
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.Fiber.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// Envelope is the decoded success body with its data left raw.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Decode reads a success envelope and unmarshals its data into out.
func (s *E2ETestSuite) Decode(resp *http.Response, out any) Envelope {
	defer func() { _ = resp.Body.Close() }()
	var env Envelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	if out != nil {
		s.Require().NoError(json.Unmarshal(env.Data, out))
	}
	return env
}

// Problem reads an RFC 9457 body.
func (s *E2ETestSuite) Problem(resp *http.Response) map[string]any {
	defer func() { _ = resp.Body.Close() }()
	s.Require().Equal("application/problem+json", resp.Header.Get("Content-Type"))
	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// CreateTestUser registers a random user through POST /user and logs it in.
func (s *E2ETestSuite) CreateTestUser() *TestUser {
	suffix := strings.ReplaceAll(uuid.NewString()[:8], "-", "")
	u := &TestUser{Username: "user_" + suffix, Email: "user_" + suffix + "@example.com"}
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, u.Username, u.Email, TestPassword)
	resp := s.MakeRequest(http.MethodPost, "/user", body, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	var created struct {
		ID uuid.UUID `json:"id"`
	}
	s.Decode(resp, &created)
	u.ID = created.ID
	u.Token = s.LoginUser(u.Email, TestPassword)
	return u
}

// LoginUser logs in through POST /auth/login and returns the bearer token.
func (s *E2ETestSuite) LoginUser(identity, password string) string {
	body := fmt.Sprintf(`{"identity":%q,"password":%q}`, identity, password)
	resp := s.MakeRequest(http.MethodPost, "/auth/login", body, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	s.Decode(resp, &out)
	s.Require().NotEmpty(out.Token)
	return out.Token
}

// StubMarket is a provider.MarketData whose answers tests set directly.
// Unknown tickers have no data.
type StubMarket struct {
	mu        sync.RWMutex
	prices    map[string]decimal.Decimal
	closes    map[string][]portfolio.PricePoint
	metrics   map[string]watchlist.Metrics
	overviews map[string]fundamental.Overview
	earnings  map[string][]provider.Earning
	dividends map[string][]provider.DividendPayment
	// Err is returned by every lookup when set.
	Err error
}

var _ provider.MarketData = (*StubMarket)(nil)

func NewStubMarket() *StubMarket {
	return &StubMarket{
		prices:    make(map[string]decimal.Decimal),
		closes:    make(map[string][]portfolio.PricePoint),
		metrics:   make(map[string]watchlist.Metrics),
		overviews: make(map[string]fundamental.Overview),
		earnings:  make(map[string][]provider.Earning),
		dividends: make(map[string][]provider.DividendPayment),
	}
}

func (m *StubMarket) SetPrice(ticker, price string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[ticker] = decimal.RequireFromString(price)
}

func (m *StubMarket) SetCloses(ticker string, points ...portfolio.PricePoint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closes[ticker] = points
}

func (m *StubMarket) SetMetrics(ticker string, metrics watchlist.Metrics) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metrics[ticker] = metrics
}

func (m *StubMarket) SetOverview(ticker string, o fundamental.Overview) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overviews[ticker] = o
}

func (m *StubMarket) SetEarnings(ticker string, e ...provider.Earning) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.earnings[ticker] = e
}

func (m *StubMarket) SetDividends(ticker string, d ...provider.DividendPayment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dividends[ticker] = d
}

func (m *StubMarket) CurrentPrice(_ context.Context, ticker string) (*decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.prices[ticker]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *StubMarket) DailyCloses(_ context.Context, ticker string, days int) ([]portfolio.PricePoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	pts := m.closes[ticker]
	if len(pts) > days {
		pts = pts[len(pts)-days:]
	}
	return pts, nil
}

func (m *StubMarket) Metrics(_ context.Context, ticker string) (watchlist.Metrics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return watchlist.Metrics{}, m.Err
	}
	return m.metrics[ticker], nil
}

func (m *StubMarket) Overview(_ context.Context, ticker string) (fundamental.Overview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return fundamental.Overview{}, m.Err
	}
	o, ok := m.overviews[ticker]
	if !ok {
		return fundamental.Overview{}, fmt.Errorf("no overview for %s: %w", ticker, domain.ErrNotFound)
	}
	return o, nil
}

func (m *StubMarket) Earnings(_ context.Context, ticker string) ([]provider.Earning, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.earnings[ticker], nil
}

func (m *StubMarket) Dividends(_ context.Context, ticker string) ([]provider.DividendPayment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.dividends[ticker], nil
}
