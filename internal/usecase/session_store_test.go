package usecase

import (
	"testing"
	"time"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
)

func TestSessionStore(t *testing.T) {
	operator := entities.User{UID: "user-1", Email: "vendas@loja.com"}

	t.Run("put and get", func(t *testing.T) {
		s := NewSessionStore(time.Minute)
		e := newQuoteEditor("sess-1", operator, nil)
		s.Put(e)

		got, ok := s.Get("sess-1")
		if !ok || got != e {
			t.Fatalf("expected stored editor back")
		}
		if s.Size() != 1 {
			t.Fatalf("expected size 1, got %d", s.Size())
		}
	})

	t.Run("missing id", func(t *testing.T) {
		s := NewSessionStore(time.Minute)
		if _, ok := s.Get("missing"); ok {
			t.Fatalf("expected miss")
		}
	})

	t.Run("delete", func(t *testing.T) {
		s := NewSessionStore(time.Minute)
		s.Put(newQuoteEditor("sess-1", operator, nil))
		s.Delete("sess-1")
		if _, ok := s.Get("sess-1"); ok {
			t.Fatalf("expected session gone")
		}
	})

	t.Run("expired session is evicted on read", func(t *testing.T) {
		s := NewSessionStore(time.Millisecond)
		s.Put(newQuoteEditor("sess-1", operator, nil))
		time.Sleep(10 * time.Millisecond)
		if _, ok := s.Get("sess-1"); ok {
			t.Fatalf("expected expired session to miss")
		}
		if s.Size() != 0 {
			t.Fatalf("expected eviction, size %d", s.Size())
		}
	})
}
