// Package kv implements every ledger repository on top of an embedded pebble
// database. Keys:
//
//	pool/state              PoolState (JSON)
//	pool/token              token service address
//	user/<address>          UserInfo (JSON)
//	account/<address>       account (JSON)
//	instr/<sender>/<id:020> InstructionRecord (JSON)
//	seq/<name>              uint64 counters
package kv

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/internal/pg"
)

const (
	poolStateKey = "pool/state"
	poolTokenKey = "pool/token"
	userPrefix   = "user/"
	accountPfx   = "account/"
	instrPrefix  = "instr/"
	seqPrefix    = "seq/"
)

type batchKey struct{}

type Store struct {
	db *pebble.DB
	mu sync.Mutex
}

func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Begin runs fn against an indexed batch and commits it with pebble.Sync when
// fn succeeds. Batches are serialized; a nested Begin joins the outer batch.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if _, ok := ctx.Value(batchKey{}).(*pebble.Batch); ok {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.db.NewIndexedBatch()
	defer b.Close()

	if err := fn(context.WithValue(ctx, batchKey{}, b)); err != nil {
		return err
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func (s *Store) reader(ctx context.Context) pebble.Reader {
	if b, ok := ctx.Value(batchKey{}).(*pebble.Batch); ok {
		return b
	}
	return s.db
}

func (s *Store) set(ctx context.Context, key string, value []byte) error {
	var err error
	if b, ok := ctx.Value(batchKey{}).(*pebble.Batch); ok {
		err = b.Set([]byte(key), value, nil)
	} else {
		err = s.db.Set([]byte(key), value, pebble.Sync)
	}
	if err != nil {
		zap.L().Error("failed to write key", zap.String("key", key), zap.Error(err))
	}
	return err
}

// get returns nil, nil when the key is absent.
func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	val, closer, err := s.reader(ctx).Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		zap.L().Error("failed to read key", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (s *Store) scan(ctx context.Context, prefix string, reverse bool, fn func(key, value []byte) error) error {
	iter, err := s.reader(ctx).NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: prefixEnd(prefix),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	if reverse {
		for iter.Last(); iter.Valid(); iter.Prev() {
			if err := fn(iter.Key(), iter.Value()); err != nil {
				return err
			}
		}
	} else {
		for iter.First(); iter.Valid(); iter.Next() {
			if err := fn(iter.Key(), iter.Value()); err != nil {
				return err
			}
		}
	}
	return iter.Error()
}

func (s *Store) nextID(ctx context.Context, name string) (uint64, error) {
	key := seqPrefix + name
	raw, err := s.get(ctx, key)
	if err != nil {
		return 0, err
	}
	var id uint64
	if len(raw) == 8 {
		id = binary.BigEndian.Uint64(raw)
	}
	id++
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id)
	return id, s.set(ctx, key, buf)
}

func prefixEnd(prefix string) []byte {
	end := []byte(prefix)
	end[len(end)-1]++
	return end
}

// -------------------- pool --------------------

func (s *Store) GetPoolState(ctx context.Context) (*domain.PoolState, error) {
	raw, err := s.get(ctx, poolStateKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: pool state", domain.ErrUninitialized)
	}
	var state domain.PoolState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: pool state: %v", domain.ErrCorruptedState, err)
	}
	return &state, nil
}

func (s *Store) SetPoolState(ctx context.Context, state *domain.PoolState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.set(ctx, poolStateKey, raw)
}

func (s *Store) GetTokenService(ctx context.Context) (string, error) {
	raw, err := s.get(ctx, poolTokenKey)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", fmt.Errorf("%w: token service address", domain.ErrUninitialized)
	}
	return string(raw), nil
}

func (s *Store) SetTokenService(ctx context.Context, address string) error {
	return s.set(ctx, poolTokenKey, []byte(address))
}

// -------------------- users --------------------

func (s *Store) GetUser(ctx context.Context, address string) (*domain.UserInfo, error) {
	raw, err := s.get(ctx, userPrefix+address)
	if err != nil || raw == nil {
		return nil, err
	}
	var user domain.UserInfo
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: user %s: %v", domain.ErrCorruptedState, address, err)
	}
	return &user, nil
}

func (s *Store) PutUser(ctx context.Context, user *domain.UserInfo) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.set(ctx, userPrefix+user.Address, raw)
}

func (s *Store) ListUserIdentities(ctx context.Context) ([]string, error) {
	addresses := []string{}
	err := s.scan(ctx, userPrefix, false, func(key, _ []byte) error {
		addresses = append(addresses, string(key[len(userPrefix):]))
		return nil
	})
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return addresses, nil
}

// -------------------- accounts --------------------

type accountRecord struct {
	ID           int       `json:"id"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Store) FindByAddress(ctx context.Context, address string) (*domain.Account, error) {
	raw, err := s.get(ctx, accountPfx+address)
	if err != nil || raw == nil {
		return nil, err
	}
	var rec accountRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: account %s: %v", domain.ErrCorruptedState, address, err)
	}
	return &domain.Account{ID: rec.ID, Address: rec.Address, PasswordHash: rec.PasswordHash, CreatedAt: rec.CreatedAt}, nil
}

func (s *Store) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	err := s.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.get(ctx, accountPfx+account.Address)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAccountExists
		}
		id, err := s.nextID(ctx, "account")
		if err != nil {
			return err
		}
		account.ID = int(id)
		account.CreatedAt = time.Now().UTC()
		raw, err := json.Marshal(accountRecord{
			ID:           account.ID,
			Address:      account.Address,
			PasswordHash: account.PasswordHash,
			CreatedAt:    account.CreatedAt,
		})
		if err != nil {
			return err
		}
		return s.set(ctx, accountPfx+account.Address, raw)
	})
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// -------------------- instructions --------------------

func (s *Store) Save(ctx context.Context, record *domain.InstructionRecord) (*domain.InstructionRecord, error) {
	err := s.Begin(ctx, func(ctx context.Context) error {
		id, err := s.nextID(ctx, "instr")
		if err != nil {
			return err
		}
		record.ID = int64(id)
		raw, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return s.set(ctx, fmt.Sprintf("%s%s/%020d", instrPrefix, record.Sender, id), raw)
	})
	if err != nil {
		zap.L().Error("can't save instruction", zap.Error(err))
		return nil, err
	}
	return record, nil
}

// ListBySender returns the sender's instructions, newest first.
func (s *Store) ListBySender(ctx context.Context, sender string) ([]domain.InstructionRecord, error) {
	var records []domain.InstructionRecord
	err := s.scan(ctx, instrPrefix+sender+"/", true, func(_, value []byte) error {
		var rec domain.InstructionRecord
		if err := json.Unmarshal(value, &rec); err != nil {
			return fmt.Errorf("%w: instruction: %v", domain.ErrCorruptedState, err)
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		zap.L().Error("failed to fetch instructions", zap.Error(err))
		return nil, err
	}
	return records, nil
}
