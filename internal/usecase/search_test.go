package usecase

import (
	"fmt"
	"testing"
)

func TestRankCatalog(t *testing.T) {
	catalog := []string{
		"LAPIS AZUL 2B",
		"LAPIS VERMELHO",
		"CANETA AZUL",
		"BORRACHA BRANCA",
	}

	t.Run("short query yields nothing", func(t *testing.T) {
		if got := rankCatalog("l", catalog); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
		if got := rankCatalog("", catalog); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("length guard counts characters, not bytes", func(t *testing.T) {
		accented := []string{"PÉ DE CABRA", "PÁ DE JARDIM"}
		if got := rankCatalog("é", accented); got != nil {
			t.Fatalf("expected nil for one accented character, got %v", got)
		}
		got := rankCatalog("pé", accented)
		if len(got) != 1 || got[0] != 0 {
			t.Fatalf("unexpected ranking: %v", got)
		}
	})

	t.Run("whitespace only yields nothing", func(t *testing.T) {
		if got := rankCatalog("   ", catalog); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("single term matches case insensitively", func(t *testing.T) {
		got := rankCatalog("lapis", catalog)
		if len(got) != 2 || got[0] != 0 || got[1] != 1 {
			t.Fatalf("unexpected ranking: %v", got)
		}
	})

	t.Run("entries with more distinct terms rank first", func(t *testing.T) {
		got := rankCatalog("lapis azul", catalog)
		if len(got) != 3 {
			t.Fatalf("expected 3 matches, got %v", got)
		}
		if got[0] != 0 {
			t.Fatalf("expected LAPIS AZUL 2B first, got %v", got)
		}
		// Single-term matches keep their catalog order.
		if got[1] != 1 || got[2] != 2 {
			t.Fatalf("unexpected tie order: %v", got)
		}
	})

	t.Run("no term matches", func(t *testing.T) {
		got := rankCatalog("parafuso", catalog)
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})

	t.Run("result is capped", func(t *testing.T) {
		big := make([]string, 25)
		for i := range big {
			big[i] = fmt.Sprintf("PARAFUSO %d", i)
		}
		got := rankCatalog("parafuso", big)
		if len(got) != maxSuggestions {
			t.Fatalf("expected %d results, got %d", maxSuggestions, len(got))
		}
		for i, idx := range got {
			if idx != i {
				t.Fatalf("expected stable order, got %v", got)
			}
		}
	})
}
