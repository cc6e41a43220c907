package orders

import (
	"sync"
	"testing"
	"time"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	const workers = 16
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("order-1")
			defer unlock()
			// unsynchronized read-modify-write; only the keyed lock
			// keeps this race-free
			v := counter
			time.Sleep(time.Millisecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("counter = %d, want %d (lost updates)", counter, workers)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := newKeyedMutex()

	unlockA := km.Lock("order-a")

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("order-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on an independent key blocked")
	}

	unlockA()
}

func TestKeyedMutexCleansUpEntries(t *testing.T) {
	km := newKeyedMutex()

	unlock := km.Lock("order-1")
	unlock()

	km.mu.Lock()
	n := len(km.locks)
	km.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected lock table to be empty, found %d entries", n)
	}
}

func TestKeyedMutexReleaseAllowsNextWaiter(t *testing.T) {
	km := newKeyedMutex()

	unlock := km.Lock("order-1")

	acquired := make(chan struct{})
	go func() {
		u := km.Lock("order-1")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first still held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after release")
	}
}
