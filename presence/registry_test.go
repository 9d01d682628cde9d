package presence_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/hanksha/car-rental-booking-backend/presence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	event   string
	payload any
}

type fakeConn struct {
	id     string
	mu     sync.Mutex
	sent   []sent
	fail   bool
	closed bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string {
	return c.id
}

func (c *fakeConn) Send(event string, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fail {
		return errors.New("broken pipe")
	}

	c.sent = append(c.sent, sent{event: event, payload: payload})
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return nil
}

func (c *fakeConn) received() []sent {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]sent(nil), c.sent...)
}

func TestAuthenticate(t *testing.T) {

	t.Run("multiple devices", func(t *testing.T) {
		r := presence.NewRegistry()
		phone, laptop := newFakeConn("phone"), newFakeConn("laptop")

		r.Authenticate(phone, "u1")
		r.Authenticate(laptop, "u1")

		require.True(t, r.Online("u1"))
		require.Equal(t, 2, r.Connections("u1"))
	})

	t.Run("idempotent", func(t *testing.T) {
		r := presence.NewRegistry()
		conn := newFakeConn("c1")

		r.Authenticate(conn, "u1")
		r.Authenticate(conn, "u1")

		require.Equal(t, 1, r.Connections("u1"))
	})

	t.Run("re-authenticating as another user moves the connection", func(t *testing.T) {
		r := presence.NewRegistry()
		conn := newFakeConn("c1")

		r.Authenticate(conn, "u1")
		r.Authenticate(conn, "u2")

		require.False(t, r.Online("u1"))
		require.True(t, r.Online("u2"))
	})
}

func TestDisconnect(t *testing.T) {
	r := presence.NewRegistry()
	phone, laptop := newFakeConn("phone"), newFakeConn("laptop")

	r.Authenticate(phone, "u1")
	r.Authenticate(laptop, "u1")

	r.Disconnect(phone)
	require.True(t, r.Online("u1"))
	require.Equal(t, 1, r.Connections("u1"))

	r.Disconnect(laptop)
	require.False(t, r.Online("u1"))
	require.Equal(t, 0, r.Connections("u1"))

	// unknown connections are ignored
	r.Disconnect(newFakeConn("ghost"))
}

func TestEmit(t *testing.T) {

	t.Run("every connection receives the payload", func(t *testing.T) {
		r := presence.NewRegistry()
		phone, laptop, other := newFakeConn("phone"), newFakeConn("laptop"), newFakeConn("other")

		r.Authenticate(phone, "u1")
		r.Authenticate(laptop, "u1")
		r.Authenticate(other, "u2")

		delivered := r.Emit("u1", "notification", map[string]string{"id": "n-1"})

		require.Equal(t, 2, delivered)
		assert.Equal(t, []sent{{"notification", map[string]string{"id": "n-1"}}}, phone.received())
		assert.Equal(t, []sent{{"notification", map[string]string{"id": "n-1"}}}, laptop.received())
		assert.Empty(t, other.received())
	})

	t.Run("absent user is a no-op", func(t *testing.T) {
		r := presence.NewRegistry()

		require.Equal(t, 0, r.Emit("nobody", "notification", nil))
	})

	t.Run("a failing connection does not stop the others", func(t *testing.T) {
		r := presence.NewRegistry()
		broken, healthy := newFakeConn("broken"), newFakeConn("healthy")
		broken.fail = true

		r.Authenticate(broken, "u1")
		r.Authenticate(healthy, "u1")

		require.Equal(t, 1, r.Emit("u1", "notification", "hello"))
		require.Len(t, healthy.received(), 1)
	})
}

func TestConcurrentChurn(t *testing.T) {
	r := presence.NewRegistry()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			conn := newFakeConn(fmt.Sprintf("c%d", i))
			user := fmt.Sprintf("u%d", i%5)

			r.Authenticate(conn, user)
			r.Emit(user, "notification", i)
			r.Disconnect(conn)
		}(i)
	}

	wg.Wait()

	for i := 0; i < 5; i++ {
		require.False(t, r.Online(fmt.Sprintf("u%d", i)))
	}
}

func TestClose(t *testing.T) {
	r := presence.NewRegistry()
	a, b := newFakeConn("a"), newFakeConn("b")

	r.Authenticate(a, "u1")
	r.Authenticate(b, "u2")

	r.Close()

	require.False(t, r.Online("u1"))
	require.False(t, r.Online("u2"))
	require.True(t, a.closed)
	require.True(t, b.closed)
}
