package bookmarklet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	rendered      []Mode
	teardowns     int
	notifications []string
	renderErr     error
}

func (f *fakeRenderer) Render(mode Mode) error {
	if f.renderErr != nil {
		return f.renderErr
	}
	f.rendered = append(f.rendered, mode)
	return nil
}

func (f *fakeRenderer) Teardown() { f.teardowns++ }

func (f *fakeRenderer) Notify(message string) {
	f.notifications = append(f.notifications, message)
}

func TestActivateOpensDetectedMode(t *testing.T) {
	renderer := &fakeRenderer{}
	ctrl := NewController(renderer)

	state := ctrl.Activate(PageInfo{Hostname: "reddit.com", ImageCount: 8})

	assert.Equal(t, StateSave, state)
	assert.Equal(t, []Mode{ModeSave}, renderer.rendered)
}

func TestActivateTogglesClosed(t *testing.T) {
	renderer := &fakeRenderer{}
	ctrl := NewController(renderer)

	ctrl.Activate(PageInfo{Hostname: "reddit.com", ImageCount: 8})
	state := ctrl.Activate(PageInfo{Hostname: "reddit.com", ImageCount: 8})

	assert.Equal(t, StateClosed, state)
	assert.Equal(t, 1, renderer.teardowns)
	// No second overlay was built.
	assert.Equal(t, []Mode{ModeSave}, renderer.rendered)
}

func TestSwitchModeRebuilds(t *testing.T) {
	renderer := &fakeRenderer{}
	ctrl := NewController(renderer)

	ctrl.Activate(PageInfo{Hostname: "reddit.com", ImageCount: 8})
	state := ctrl.SwitchMode()

	assert.Equal(t, StateSearch, state)
	assert.Equal(t, 1, renderer.teardowns)
	assert.Equal(t, []Mode{ModeSave, ModeSearch}, renderer.rendered)
}

func TestSwitchModeWhileClosedIsNoop(t *testing.T) {
	renderer := &fakeRenderer{}
	ctrl := NewController(renderer)

	assert.Equal(t, StateClosed, ctrl.SwitchMode())
	assert.Empty(t, renderer.rendered)
}

func TestActivateRenderFailureNotifies(t *testing.T) {
	renderer := &fakeRenderer{renderErr: errors.New("csp blocked")}
	ctrl := NewController(renderer)

	state := ctrl.Activate(PageInfo{Hostname: "reddit.com", ImageCount: 8})

	assert.Equal(t, StateClosed, state)
	require.Len(t, renderer.notifications, 1)
	assert.Contains(t, renderer.notifications[0], "csp blocked")
}

func TestHandleDropOnlyInSaveMode(t *testing.T) {
	renderer := &fakeRenderer{}
	ctrl := NewController(renderer)

	ctrl.Activate(PageInfo{Hostname: "discord.com", TextInputCount: 1})
	_, ok := ctrl.HandleDrop(DropPayload{Text: "https://img.test/a.png"})

	assert.False(t, ok)
}

func TestHandleDropUnsupportedNotifies(t *testing.T) {
	renderer := &fakeRenderer{}
	ctrl := NewController(renderer)

	ctrl.Activate(PageInfo{Hostname: "reddit.com", ImageCount: 8})
	_, ok := ctrl.HandleDrop(DropPayload{Text: "just some words"})

	assert.False(t, ok)
	require.Len(t, renderer.notifications, 1)
	assert.Equal(t, StateSave, ctrl.State())
}
