package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/five82/shelf/internal/potter"
)

// Key is the slot name holding the serialized favorites array.
const Key = "favoritesBooks"

// AddResult reports what Add did with a book.
type AddResult int

const (
	Added AddResult = iota + 1
	AlreadyExists
)

func (r AddResult) String() string {
	switch r {
	case Added:
		return "added"
	case AlreadyExists:
		return "already exists"
	default:
		return "unknown"
	}
}

// ErrWrite matches every persistence failure returned by Add.
var ErrWrite = errors.New("save favorites")

// WriteError wraps a failure to persist the favorites array. The
// previously stored array is left as it was.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("save favorites: %v", e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrWrite) match any WriteError.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// Store keeps an ordered, deduplicated list of books in one slot.
type Store struct {
	slot   Slot
	logger *slog.Logger
}

// New builds a Store over slot.
func New(slot Slot, logger *slog.Logger) *Store {
	return &Store{slot: slot, logger: orDiscard(logger)}
}

// ReadAll returns the stored favorites in insertion order. A missing,
// unreadable or corrupted value yields an empty list; the problem is
// logged and not returned.
func (s *Store) ReadAll() []potter.Book {
	books, err := s.load()
	if err != nil {
		s.logger.Warn("favorites read failed; treating as empty", "error", err)
		return []potter.Book{}
	}
	return books
}

// load reads the stored list. Missing and corrupted values are empty;
// slot failures are returned so nothing is written on top of them.
func (s *Store) load() ([]potter.Book, error) {
	raw, ok, err := s.slot.Get(Key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []potter.Book{}, nil
	}
	var books []potter.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		s.logger.Warn("favorites value is corrupted; treating as empty",
			"key", Key,
			"bytes", len(raw),
			"error", err)
		return []potter.Book{}, nil
	}
	if books == nil {
		return []potter.Book{}, nil
	}
	return books, nil
}

// Count returns the number of stored favorites.
func (s *Store) Count() int {
	return len(s.ReadAll())
}

// Add appends book unless a favorite with the same number exists.
//
// The read and the write are separate slot operations. Two stores sharing
// one slot can interleave and the last writer wins, dropping the other's
// book. A failed read returns a *WriteError and writes nothing.
func (s *Store) Add(book potter.Book) (AddResult, error) {
	books, err := s.load()
	if err != nil {
		s.logger.Error("favorite not saved; read failed", "number", book.Number, "error", err)
		return 0, &WriteError{Err: fmt.Errorf("read: %w", err)}
	}
	for _, fav := range books {
		if fav.SameAs(book) {
			s.logger.Debug("favorite already stored", "number", book.Number)
			return AlreadyExists, nil
		}
	}

	books = append(books, book)
	data, err := json.Marshal(books)
	if err != nil {
		return 0, &WriteError{Err: fmt.Errorf("marshal: %w", err)}
	}
	if err := s.slot.Set(Key, data); err != nil {
		s.logger.Error("favorite not saved", "number", book.Number, "error", err)
		return 0, &WriteError{Err: err}
	}
	s.logger.Info("favorite added", "number", book.Number, "title", book.OriginalTitle, "total", len(books))
	return Added, nil
}
