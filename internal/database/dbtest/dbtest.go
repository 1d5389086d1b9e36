// Package dbtest provides in-memory stand-ins for database.PGX and
// database.Tx. Only transaction control is implemented, queries panic, so
// they are meant for code whose repositories are faked as well.
package dbtest

import (
	"context"
	"sync"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/jackc/pgx/v4"
)

type Tx struct {
	database.Tx

	CommitErr error

	mu         sync.Mutex
	committed  bool
	rolledBack bool
}

func (t *Tx) Commit(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.CommitErr != nil {
		return t.CommitErr
	}
	t.committed = true
	return nil
}

func (t *Tx) Rollback(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (t *Tx) Committed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.committed
}

func (t *Tx) RolledBack() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rolledBack
}

// PGX hands out a new Tx on every BeginTx and remembers all of them.
type PGX struct {
	database.PGX

	BeginErr  error
	CommitErr error

	mu  sync.Mutex
	txs []*Tx
}

func (p *PGX) BeginTx(context.Context, *pgx.TxOptions) (database.Tx, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.BeginErr != nil {
		return nil, p.BeginErr
	}

	tx := &Tx{CommitErr: p.CommitErr}
	p.txs = append(p.txs, tx)
	return tx, nil
}

// Txs returns every transaction begun so far.
func (p *PGX) Txs() []*Tx {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Tx(nil), p.txs...)
}

// LastTx returns the most recent transaction or nil.
func (p *PGX) LastTx() *Tx {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.txs) == 0 {
		return nil
	}
	return p.txs[len(p.txs)-1]
}
