package reactive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignal_SetAndSubscribe(t *testing.T) {
	sig := NewSignal(1)
	calls := 0

	unsub := sig.Subscribe(func() {
		calls++
	})

	require.Zero(t, calls)
	require.True(t, sig.Set(2))
	require.Equal(t, 1, calls)

	unsub()
	unsub()
	sig.Set(3)
	require.Equal(t, 1, calls, "no calls after unsubscribe")
}

func TestSignal_ComparableSuppressesEqualValues(t *testing.T) {
	sig := NewComparable(5)
	var seen []int
	sig.Watch(func(v int) { seen = append(seen, v) })

	require.False(t, sig.Set(5))
	require.True(t, sig.Set(6))
	require.Equal(t, []int{6}, seen)
}

func TestSignal_Update(t *testing.T) {
	sig := NewComparable(1)

	require.True(t, sig.Update(func(v int) int { return v + 1 }))
	require.Equal(t, 2, sig.Get())
	require.False(t, sig.Update(func(v int) int { return v }))
	require.False(t, sig.Update(nil))
}

func TestSignal_NotifiesInRegistrationOrder(t *testing.T) {
	sig := NewSignal("a")
	var order []string
	sig.Subscribe(func() { order = append(order, "first") })
	unsub := sig.Subscribe(func() { order = append(order, "second") })
	sig.Subscribe(func() { order = append(order, "third") })
	unsub()

	sig.Set("b")
	require.Equal(t, []string{"first", "third"}, order)
}

func TestSignal_ConcurrentUpdatesAreSerialised(t *testing.T) {
	sig := NewComparable(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sig.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()
	require.Equal(t, 50, sig.Get())
}

func TestSignal_NilReceiver(t *testing.T) {
	var sig *Signal[int]
	require.Zero(t, sig.Get())
	require.False(t, sig.Set(1))
	sig.Watch(func(int) {})()
}

func TestSubscriptions_Clear(t *testing.T) {
	a := NewSignal(0)
	b := NewSignal(0)
	calls := 0

	var subs Subscriptions
	subs.Subscribe(a, func() { calls++ })
	subs.Subscribe(b, func() { calls++ })
	require.Equal(t, 2, subs.Len())

	a.Set(1)
	require.Equal(t, 1, calls)

	subs.Clear()
	a.Set(2)
	b.Set(2)
	require.Equal(t, 1, calls)
	require.Zero(t, subs.Len())
}

func TestSignal_NestedSetDeliversLatestValue(t *testing.T) {
	sig := NewComparable(0)
	var first, second []int

	sig.Watch(func(v int) {
		first = append(first, v)
		if v == 1 {
			sig.Set(2)
		}
	})
	sig.Watch(func(v int) {
		second = append(second, v)
	})

	require.True(t, sig.Set(1))
	require.Equal(t, 2, sig.Get())
	require.Equal(t, []int{1, 2}, first)
	require.Equal(t, []int{2, 2}, second, "later listeners never see a value older than the current one")
}
