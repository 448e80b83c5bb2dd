package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherOrderAndFilter(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe(KindKeyPressed, func(ev Event) { got = append(got, "key1") })
	d.SubscribeAll(func(ev Event) { got = append(got, "all:"+ev.Kind().String()) })
	d.Subscribe(KindKeyPressed, func(ev Event) { got = append(got, "key2") })

	d.Dispatch(KeyPressed{Key: "Space"})
	d.Dispatch(MouseMoved{X: 1, Y: 2})

	assert.Equal(t, []string{"key1", "all:KeyPressed", "key2", "all:MouseMoved"}, got)
	assert.Equal(t, 3, d.Len())
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	n := 0
	id := d.SubscribeAll(func(Event) { n++ })

	d.Dispatch(FocusLost{})
	assert.True(t, d.Unsubscribe(id))
	assert.False(t, d.Unsubscribe(id))
	d.Dispatch(FocusLost{})

	assert.Equal(t, 1, n)
	assert.Equal(t, 0, d.Len())
}

func TestDispatcherUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var got []int
	var second Subscription

	d.SubscribeAll(func(Event) {
		got = append(got, 1)
		d.Unsubscribe(second)
	})
	second = d.SubscribeAll(func(Event) { got = append(got, 2) })

	d.Dispatch(FocusGained{})
	d.Dispatch(FocusGained{})

	assert.Equal(t, []int{1, 2, 1}, got)
}

func TestEventKinds(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{WindowClosed{}, "WindowClosed"},
		{WindowResized{Width: 1, Height: 2}, "WindowResized"},
		{FocusLost{}, "FocusLost"},
		{FocusGained{}, "FocusGained"},
		{TextEntered{Rune: 'x'}, "TextEntered"},
		{KeyPressed{}, "KeyPressed"},
		{KeyReleased{}, "KeyReleased"},
		{MouseButtonPressed{}, "MouseButtonPressed"},
		{MouseButtonReleased{}, "MouseButtonReleased"},
		{MouseMoved{}, "MouseMoved"},
		{MouseWheelScrolled{}, "MouseWheelScrolled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ev.Kind().String())
	}
	assert.Equal(t, "EventKind(99)", EventKind(99).String())
	assert.Equal(t, "Middle", MouseMiddle.String())
}

func TestUpdater(t *testing.T) {
	u := NewUpdater()
	var got []string
	errA := errors.New("a failed")

	idA := u.Add(UpdateFunc(func(dt time.Duration) error {
		got = append(got, "a:"+dt.String())
		return errA
	}))
	u.Add(UpdateFunc(func(dt time.Duration) error {
		got = append(got, "b:"+dt.String())
		return nil
	}))

	err := u.Update(time.Second)
	assert.ErrorIs(t, err, errA)
	assert.Equal(t, []string{"a:1s", "b:1s"}, got, "all entities run despite errors")

	assert.True(t, u.Remove(idA))
	assert.False(t, u.Remove(idA))
	assert.NoError(t, u.Update(time.Second))
	assert.Equal(t, 1, u.Len())
}
