package bookmarklet

// State of the overlay. Closed is the implicit resting state.
type State string

const (
	StateClosed State = "closed"
	StateSave   State = State(ModeSave)
	StateSearch State = State(ModeSearch)
)

// Renderer is the thin adapter that owns the actual presentation. The
// controller only drives lifecycle and never touches rendering details.
type Renderer interface {
	Render(mode Mode) error
	Teardown()
	Notify(message string)
}

// Controller is the overlay state machine. It is not safe for concurrent use;
// the browser side invokes it from a single event loop.
type Controller struct {
	renderer Renderer
	state    State
}

func NewController(renderer Renderer) *Controller {
	return &Controller{renderer: renderer, state: StateClosed}
}

func (c *Controller) State() State {
	return c.state
}

// Activate toggles the overlay. Re-activating while open always closes first
// instead of stacking, so the entry point stays idempotent.
func (c *Controller) Activate(page PageInfo) State {
	if c.state != StateClosed {
		c.Close()
		return c.state
	}

	mode := DetectBestMode(page)
	if err := c.renderer.Render(mode); err != nil {
		c.renderer.Notify("Could not open overlay: " + err.Error())
		return c.state
	}
	c.state = State(mode)
	return c.state
}

// SwitchMode tears down the current overlay and builds the other one. A
// no-op while closed.
func (c *Controller) SwitchMode() State {
	var next Mode
	switch c.state {
	case StateSave:
		next = ModeSearch
	case StateSearch:
		next = ModeSave
	default:
		return c.state
	}

	c.renderer.Teardown()
	c.state = StateClosed
	if err := c.renderer.Render(next); err != nil {
		c.renderer.Notify("Could not switch mode: " + err.Error())
		return c.state
	}
	c.state = State(next)
	return c.state
}

func (c *Controller) Close() {
	if c.state == StateClosed {
		return
	}
	c.renderer.Teardown()
	c.state = StateClosed
}

// HandleDrop classifies a drop received by the save overlay. Unsupported
// payloads surface as a notification and leave the overlay open.
func (c *Controller) HandleDrop(payload DropPayload) (*Drop, bool) {
	if c.state != StateSave {
		return nil, false
	}
	drop, err := ClassifyDrop(payload)
	if err != nil {
		c.renderer.Notify("Drop not supported: " + err.Error())
		return nil, false
	}
	return drop, true
}
