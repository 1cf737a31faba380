package tradesim

import "sort"

// Stock is a tradable security with its current market price.
//
// In this simulator prices are fixed when the market is built and never
// change during a session.
type Stock struct {
	symbol string
	price  Money
}

// NewStock creates a stock. The symbol must not be empty.
func NewStock(symbol string, price Money) *Stock {
	if symbol == "" {
		panic("stock symbol must not be empty")
	}
	return &Stock{symbol: symbol, price: price}
}

func (s *Stock) Symbol() string { return s.symbol }
func (s *Stock) Price() Money   { return s.price }

// SetPrice changes the stock price. Only used when building a market; the
// builtin market never changes prices during a session.
func (s *Stock) SetPrice(p Money) { s.price = p }

// Market holds the fixed set of tradable stocks, indexed by symbol.
type Market struct {
	stocks []*Stock
	index  map[string]*Stock
}

// NewMarket returns a new empty market.
func NewMarket() *Market {
	return &Market{
		stocks: make([]*Stock, 0),
		index:  make(map[string]*Stock),
	}
}

// Add registers a stock in the market. Adding a symbol twice replaces the
// previous entry.
func (m *Market) Add(s *Stock) {
	if _, ok := m.index[s.symbol]; !ok {
		m.stocks = append(m.stocks, s)
	} else {
		for i, old := range m.stocks {
			if old.symbol == s.symbol {
				m.stocks[i] = s
				break
			}
		}
	}
	m.index[s.symbol] = s
	sort.Slice(m.stocks, func(i, j int) bool { return m.stocks[i].symbol < m.stocks[j].symbol })
}

func (m *Market) Has(symbol string) bool {
	_, ok := m.index[symbol]
	return ok
}

// Get returns the stock for this symbol, or nil if unknown.
func (m *Market) Get(symbol string) *Stock { return m.index[symbol] }

func (m *Market) Len() int { return len(m.stocks) }

// Stocks returns all stocks in symbol order.
func (m *Market) Stocks() []*Stock {
	out := make([]*Stock, len(m.stocks))
	copy(out, m.stocks)
	return out
}

// BuiltinMarket returns the market data this simulator trades against.
func BuiltinMarket() *Market {
	m := NewMarket()
	m.Add(NewStock("AAPL", M(1800, Currency)))
	m.Add(NewStock("GOOGL", M(2500, Currency)))
	m.Add(NewStock("TSLA", M(3000, Currency)))
	m.Add(NewStock("INFY", M(1600, Currency)))
	return m
}
