package parser

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/zhuyin"
)

// Pool lends configured parsers to concurrent workers. All parsers of a
// pool are configured for the same scheme.
type Pool struct {
	scheme zhuyin.Scheme
	opool  *pool.ObjectPool
}

// NewPool creates a pool of parsers for a scheme. At most max parsers will
// be lent at any time; borrowers will block until a parser is returned.
// max <= 0 means no limit. An unknown scheme will panic.
func NewPool(ctx context.Context, scheme zhuyin.Scheme, max int) *Pool {
	if !scheme.IsValid() {
		panic(fmt.Sprintf("parser: unknown keyboard scheme %v", scheme))
	}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			p := New()
			p.Configure(scheme)
			return p, nil
		})
	config := pool.NewDefaultPoolConfig()
	if max <= 0 {
		config.MaxTotal = -1 // infinity
		config.BlockWhenExhausted = false
	} else {
		config.MaxTotal = max
		config.MaxIdle = max
		config.BlockWhenExhausted = true
	}
	return &Pool{
		scheme: scheme,
		opool:  pool.NewObjectPool(ctx, factory, config),
	}
}

// Scheme returns the scheme the parsers of the pool are configured for.
func (p *Pool) Scheme() zhuyin.Scheme {
	return p.scheme
}

// Borrow gets a parser from the pool. Borrowers have to return it by
// calling Return.
func (p *Pool) Borrow(ctx context.Context) (*Parser, error) {
	o, err := p.opool.BorrowObject(ctx)
	if err != nil {
		return nil, fmt.Errorf("parser pool: %w", err)
	}
	return o.(*Parser), nil
}

// Return puts a parser back into the pool. Parsers which have been
// re-configured by the borrower are reset to the pool's scheme.
func (p *Pool) Return(ctx context.Context, parser *Parser) error {
	if parser.Scheme() != p.scheme {
		parser.Configure(p.scheme)
	}
	if err := p.opool.ReturnObject(ctx, parser); err != nil {
		return fmt.Errorf("parser pool: %w", err)
	}
	return nil
}

// Parse borrows a parser, parses text and returns the parser to the pool.
func (p *Pool) Parse(ctx context.Context, opts zhuyin.Options, text string) (zhuyin.Keys, []zhuyin.Span, int, error) {
	parser, err := p.Borrow(ctx)
	if err != nil {
		return nil, nil, 0, err
	}
	keys, spans, n := parser.Parse(opts, text)
	return keys, spans, n, p.Return(ctx, parser)
}

// Active returns the number of parsers currently lent.
func (p *Pool) Active() int {
	return p.opool.GetNumActive()
}

// Close releases the pool. Borrowing from a closed pool fails.
func (p *Pool) Close(ctx context.Context) {
	p.opool.Close(ctx)
}
