package favorites

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Slot is a durable key-value cell. Set must either replace the whole value
// or leave the previous one in place.
type Slot interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// BadgerSlot stores values in an embedded Badger database.
type BadgerSlot struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ Slot = (*BadgerSlot)(nil)

// OpenBadger opens (or creates) a Badger database in dir.
func OpenBadger(dir string, logger *slog.Logger) (*BadgerSlot, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.CompactL0OnClose = true
	return open(opts, logger)
}

// OpenInMemory opens a Badger database that lives only for the process.
func OpenInMemory(logger *slog.Logger) (*BadgerSlot, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts, logger)
}

func open(opts badger.Options, logger *slog.Logger) (*BadgerSlot, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	logger = orDiscard(logger)
	if opts.InMemory {
		logger.Info("favorites database opened in memory")
	} else {
		logger.Info("favorites database opened", "path", opts.Dir)
	}
	return &BadgerSlot{db: db, logger: logger}, nil
}

// Get returns the value stored at key. A missing key is not an error.
func (s *BadgerSlot) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", key, err)
	}
	return value, true, nil
}

// Set replaces the value at key in a single transaction.
func (s *BadgerSlot) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Close flushes and closes the database.
func (s *BadgerSlot) Close() error {
	s.logger.Info("closing favorites database")
	return s.db.Close()
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
