package infrastructure

import (
	"errors"
	"sync"
	"testing"

	"handling/domain"
)

func TestInmemRepository(t *testing.T) {
	r := NewInmemRepository[domain.UNLocode, domain.Location]()

	if _, err := r.Find(domain.SESTO); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := r.Store(domain.SESTO, domain.Stockholm); err != nil {
		t.Fatal(err)
	}

	l, err := r.Find(domain.SESTO)
	if err != nil {
		t.Fatal(err)
	}
	if l != domain.Stockholm {
		t.Fatalf("expected %v, got %v", domain.Stockholm, l)
	}

	// Store overwrites; the last write is retained.
	renamed := domain.Location{UNLocode: domain.SESTO, Name: "Stockholm Central"}
	if err := r.Store(domain.SESTO, renamed); err != nil {
		t.Fatal(err)
	}
	l, err = r.Find(domain.SESTO)
	if err != nil {
		t.Fatal(err)
	}
	if l != renamed {
		t.Fatalf("expected %v, got %v", renamed, l)
	}

	if err := r.Store(domain.AUMEL, domain.Melbourne); err != nil {
		t.Fatal(err)
	}
	ls, err := r.FindAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(ls))
	}
}

func TestInmemRepositoryConcurrentAccess(t *testing.T) {
	r := NewInmemRepository[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if err := r.Store(i%10, i); err != nil {
				t.Error(err)
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			if _, err := r.Find(i % 10); err != nil && !errors.Is(err, domain.ErrNotFound) {
				t.Error(err)
			}
			if _, err := r.FindAll(); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
}
