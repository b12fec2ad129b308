package hub

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeConn records writes; failAfter>0 makes WriteMessage fail once that
// many frames have been written.
type fakeConn struct {
	mu        sync.Mutex
	frames    [][]byte
	failAfter int
	closed    bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAfter > 0 && len(f.frames) >= f.failAfter {
		return errors.New("broken pipe")
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	f.frames = append(f.frames, cp)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) frameCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func (f *fakeConn) frame(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.frames[i])
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestPublishFanOut(t *testing.T) {
	h := New()

	conns := []*fakeConn{{}, {}, {}}
	for _, fc := range conns {
		h.Subscribe("abc123", fc)
	}
	other := &fakeConn{}
	h.Subscribe("xyz789", other)

	h.Publish("abc123", map[string]any{"type": EventVoteUpdate, "question_id": 7, "upvotes": 3})

	for i, fc := range conns {
		fc := fc
		waitFor(t, func() bool { return fc.frameCount() == 1 })
		if !strings.Contains(fc.frame(0), EventVoteUpdate) {
			t.Errorf("conn %d: frame %q missing type", i, fc.frame(0))
		}
	}

	time.Sleep(50 * time.Millisecond)
	if other.frameCount() != 0 {
		t.Errorf("subscriber of another meeting received %d frames", other.frameCount())
	}
}

func TestPublishToEmptyRoom(t *testing.T) {
	h := New()
	// must not panic or error
	h.Publish("nobody-here", map[string]any{"type": EventSessionEnded})
}

func TestUnsubscribeIdempotent(t *testing.T) {
	h := New()
	fc := &fakeConn{}
	c := h.Subscribe("abc123", fc)

	if got := h.Subscribers("abc123"); got != 1 {
		t.Fatalf("Subscribers = %d, want 1", got)
	}

	h.Unsubscribe(c)
	h.Unsubscribe(c) // second call is a no-op
	h.Unsubscribe(nil)

	if got := h.Subscribers("abc123"); got != 0 {
		t.Errorf("Subscribers after unsubscribe = %d, want 0", got)
	}

	waitFor(t, func() bool {
		fc.mu.Lock()
		defer fc.mu.Unlock()
		return fc.closed
	})
}

func TestEmptyRoomIsRemoved(t *testing.T) {
	h := New()
	c1 := h.Subscribe("abc123", &fakeConn{})
	c2 := h.Subscribe("abc123", &fakeConn{})

	h.Unsubscribe(c1)
	h.Unsubscribe(c2)

	h.mu.RLock()
	_, ok := h.rooms["abc123"]
	h.mu.RUnlock()
	if ok {
		t.Error("empty room left in registry")
	}
}

func TestDeadConnectionIsEvicted(t *testing.T) {
	h := New()
	dead := &fakeConn{failAfter: 1}
	healthy := &fakeConn{}
	h.Subscribe("abc123", dead)
	h.Subscribe("abc123", healthy)

	h.Publish("abc123", map[string]any{"type": EventNewQuestion, "n": 1})
	waitFor(t, func() bool { return dead.frameCount() == 1 })

	// second publish hits the broken writer and must evict it without
	// disturbing the healthy subscriber
	h.Publish("abc123", map[string]any{"type": EventNewQuestion, "n": 2})
	waitFor(t, func() bool { return healthy.frameCount() == 2 })
	waitFor(t, func() bool { return h.Subscribers("abc123") == 1 })

	h.Publish("abc123", map[string]any{"type": EventNewQuestion, "n": 3})
	waitFor(t, func() bool { return healthy.frameCount() == 3 })
}

func TestPerClientOrderIsFIFO(t *testing.T) {
	h := New()
	fc := &fakeConn{}
	h.Subscribe("abc123", fc)

	const n = 50
	for i := 0; i < n; i++ {
		h.Publish("abc123", map[string]any{"type": EventVoteUpdate, "seq": i})
	}

	waitFor(t, func() bool { return fc.frameCount() == n })
	for i := 0; i < n; i++ {
		if !strings.Contains(fc.frame(i), `"seq":`) {
			t.Fatalf("frame %d: unexpected payload %q", i, fc.frame(i))
		}
	}
	// spot-check ordering at the edges
	if !strings.Contains(fc.frame(0), `"seq":0`) || !strings.Contains(fc.frame(n-1), `"seq":49`) {
		t.Errorf("frames out of order: first=%q last=%q", fc.frame(0), fc.frame(n-1))
	}
}

func TestConcurrentPublishAndChurn(t *testing.T) {
	h := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c := h.Subscribe("abc123", &fakeConn{})
				h.Publish("abc123", map[string]any{"type": EventVoteUpdate, "j": j})
				h.Unsubscribe(c)
			}
		}()
	}
	wg.Wait()

	if got := h.Subscribers("abc123"); got != 0 {
		t.Errorf("Subscribers after churn = %d, want 0", got)
	}
}
