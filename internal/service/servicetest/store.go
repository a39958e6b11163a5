// Package servicetest provides an in-memory store for service tests. Begin
// holds a single mutex for the whole transaction, which gives the same
// per-user serialization the row lock gives in Postgres, and restores a
// snapshot when the transaction fails.
package servicetest

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/internal/pg"
)

type txKey struct{}

type state struct {
	users     map[domain.ID]domain.User
	books     map[domain.ID]domain.Book
	purchases map[domain.ID][]domain.Purchase
	topUps    map[string]domain.TopUp
}

func (s state) clone() state {
	c := state{
		users:     make(map[domain.ID]domain.User, len(s.users)),
		books:     make(map[domain.ID]domain.Book, len(s.books)),
		purchases: make(map[domain.ID][]domain.Purchase, len(s.purchases)),
		topUps:    make(map[string]domain.TopUp, len(s.topUps)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.books {
		c.books[k] = v
	}
	for k, v := range s.purchases {
		c.purchases[k] = append([]domain.Purchase(nil), v...)
	}
	for k, v := range s.topUps {
		c.topUps[k] = v
	}
	return c
}

type Store struct {
	mu    sync.Mutex
	state state
	now   func() time.Time

	// Hold is slept inside every transaction after the balance is read.
	Hold time.Duration
}

var _ pg.TXManager = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		state: state{
			users:     map[domain.ID]domain.User{},
			books:     map[domain.ID]domain.Book{},
			purchases: map[domain.ID][]domain.Purchase{},
			topUps:    map[string]domain.TopUp{},
		},
		now: time.Now,
	}
}

func (s *Store) AddUser(email string, coins int64) domain.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := domain.NewID()
	s.state.users[id] = domain.User{ID: id, Email: email, Coins: coins, CreatedAt: s.now()}
	return id
}

func (s *Store) AddBook(name string, price int64) domain.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := domain.NewID()
	s.state.books[id] = domain.Book{ID: id, Name: name, Price: price, Content: "https://cdn.example.com/" + id.String() + ".pdf"}
	return id
}

func (s *Store) Coins(id domain.ID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.users[id].Coins
}

func (s *Store) Owned(userID domain.ID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.purchases[userID])
}

func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// Snapshot reads under the same mutex Begin holds.
func (s *Store) Snapshot(ctx context.Context, fn pg.TransactionalFn) error {
	return s.Begin(ctx, fn)
}

// do runs fn under the store mutex unless ctx already holds it.
func (s *Store) do(ctx context.Context, fn func()) {
	if ctx.Value(txKey{}) == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}

func (s *Store) Users() *Users         { return &Users{s} }
func (s *Store) Books() *Books         { return &Books{s} }
func (s *Store) Purchases() *Purchases { return &Purchases{s} }
func (s *Store) TopUps() *TopUps       { return &TopUps{s} }

type Users struct{ s *Store }

func (u *Users) FindByEmail(ctx context.Context, email string) (user *domain.User, err error) {
	u.s.do(ctx, func() {
		for _, v := range u.s.state.users {
			if strings.EqualFold(v.Email, email) {
				found := v
				user = &found
				return
			}
		}
	})
	return user, nil
}

func (u *Users) FindByID(ctx context.Context, id domain.ID) (user *domain.User, err error) {
	u.s.do(ctx, func() {
		if v, ok := u.s.state.users[id]; ok {
			user = &v
		}
	})
	return user, nil
}

func (u *Users) Create(ctx context.Context, user *domain.User) (created *domain.User, err error) {
	u.s.do(ctx, func() {
		for _, v := range u.s.state.users {
			if strings.EqualFold(v.Email, user.Email) {
				err = domain.ErrUserExists
				return
			}
		}
		user.ID = domain.NewID()
		user.Coins = 0
		user.CreatedAt = u.s.now()
		u.s.state.users[user.ID] = *user
		created = user
	})
	return created, err
}

func (u *Users) LockByID(ctx context.Context, id domain.ID) (coins int64, err error) {
	u.s.do(ctx, func() {
		v, ok := u.s.state.users[id]
		if !ok {
			err = domain.ErrUserNotFound
			return
		}
		coins = v.Coins
	})
	if err == nil && u.s.Hold > 0 {
		time.Sleep(u.s.Hold)
	}
	return coins, err
}

// AdjustCoins rejects a negative result the way the coins >= 0 check
// constraint does.
func (u *Users) AdjustCoins(ctx context.Context, id domain.ID, delta int64) (coins int64, err error) {
	u.s.do(ctx, func() {
		v, ok := u.s.state.users[id]
		if !ok {
			err = domain.ErrUserNotFound
			return
		}
		if (delta > 0 && v.Coins > math.MaxInt64-delta) || (delta < 0 && v.Coins < math.MinInt64-delta) {
			err = &pgconn.PgError{Code: "22003", Message: "bigint out of range"}
			return
		}
		if v.Coins+delta < 0 {
			err = &pgconn.PgError{Code: "23514", Message: "new row violates check constraint \"users_coins_check\""}
			return
		}
		v.Coins += delta
		u.s.state.users[id] = v
		coins = v.Coins
	})
	return coins, err
}

type Books struct{ s *Store }

func (b *Books) FindByID(ctx context.Context, id domain.ID) (book *domain.Book, err error) {
	b.s.do(ctx, func() {
		if v, ok := b.s.state.books[id]; ok {
			book = &v
		}
	})
	return book, nil
}

func (b *Books) GetPrice(ctx context.Context, id domain.ID) (price int64, err error) {
	b.s.do(ctx, func() {
		v, ok := b.s.state.books[id]
		if !ok {
			err = domain.ErrItemNotFound
			return
		}
		price = v.Price
	})
	return price, err
}

type Purchases struct{ s *Store }

func (p *Purchases) Create(ctx context.Context, purchase *domain.Purchase) (err error) {
	p.s.do(ctx, func() {
		for _, v := range p.s.state.purchases[purchase.UserID] {
			if v.BookID == purchase.BookID {
				err = domain.ErrAlreadyOwned
				return
			}
		}
		purchase.PurchasedAt = p.s.now()
		p.s.state.purchases[purchase.UserID] = append(p.s.state.purchases[purchase.UserID], *purchase)
	})
	return err
}

func (p *Purchases) Exists(ctx context.Context, userID, bookID domain.ID) (exists bool, err error) {
	p.s.do(ctx, func() {
		for _, v := range p.s.state.purchases[userID] {
			if v.BookID == bookID {
				exists = true
				return
			}
		}
	})
	return exists, nil
}

func (p *Purchases) ListByUserID(ctx context.Context, userID domain.ID) (purchases []domain.Purchase, err error) {
	p.s.do(ctx, func() {
		purchases = append(purchases, p.s.state.purchases[userID]...)
	})
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].PurchasedAt.After(purchases[j].PurchasedAt)
	})
	return purchases, nil
}

func (p *Purchases) ListBookIDs(ctx context.Context, userID domain.ID) (ids []domain.ID, err error) {
	ids = []domain.ID{}
	p.s.do(ctx, func() {
		for _, v := range p.s.state.purchases[userID] {
			ids = append(ids, v.BookID)
		}
	})
	return ids, nil
}

type TopUps struct{ s *Store }

func (t *TopUps) Create(ctx context.Context, topUp *domain.TopUp) (inserted bool, err error) {
	t.s.do(ctx, func() {
		if _, ok := t.s.state.topUps[topUp.Token]; ok {
			return
		}
		topUp.AppliedAt = t.s.now()
		t.s.state.topUps[topUp.Token] = *topUp
		inserted = true
	})
	return inserted, nil
}

func (t *TopUps) FindByToken(ctx context.Context, token string) (topUp *domain.TopUp, err error) {
	t.s.do(ctx, func() {
		if v, ok := t.s.state.topUps[token]; ok {
			topUp = &v
		}
	})
	return topUp, nil
}

func (t *TopUps) ListByUserID(ctx context.Context, userID domain.ID) (topUps []domain.TopUp, err error) {
	t.s.do(ctx, func() {
		for _, v := range t.s.state.topUps {
			if v.UserID == userID {
				topUps = append(topUps, v)
			}
		}
	})
	sort.Slice(topUps, func(i, j int) bool {
		return topUps[i].AppliedAt.After(topUps[j].AppliedAt)
	})
	return topUps, nil
}
