package bubblesplit

import (
	"errors"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/resonantlabs/splitview/splitview"
)

// doubleClickWindow is how close together two presses on the same sash
// must land to count as a reset gesture rather than two separate drags.
const doubleClickWindow = 400 * time.Millisecond

// sashWidth is the rendered thickness of a sash along the orthogonal axis
// (one terminal cell), matching handleWidth in the teacher reference.
const sashWidth = 1

// ErrChildCountMismatch is returned by New when children and descriptors
// have different lengths.
var ErrChildCountMismatch = errors.New("bubblesplit: children and descriptors must have the same length")

var (
	sashStyle = lipgloss.NewStyle().
			Width(sashWidth).
			Foreground(lipgloss.Color("240"))

	sashActiveStyle = sashStyle.
			Foreground(lipgloss.Color("212"))
)

// Container is a tea.Model that lays out its children along a single axis
// with draggable sashes between them, backed by a [splitview.Engine] for
// every sizing and drag decision (spec §6 reference binding).
type Container struct {
	id          string
	engine      *splitview.Engine
	children    []tea.Model
	descriptors []*splitview.Descriptor

	width, height int

	dragging   bool
	activeSash int

	lastPressSash int
	lastPressAt   time.Time
}

// New builds a Container. descriptors must have one entry per child; the
// engine starts each child at its minimum size via [splitview.Distribute].
func New(children []tea.Model, descriptors []*splitview.Descriptor, opts splitview.Options) (*Container, error) {
	if len(children) != len(descriptors) {
		return nil, ErrChildCountMismatch
	}

	e := splitview.New(opts)
	for i, d := range descriptors {
		if err := e.AddView(d, splitview.Distribute(), i); err != nil {
			return nil, err
		}
	}

	c := &Container{
		id:            zone.NewPrefix(),
		engine:        e,
		children:      children,
		descriptors:   descriptors,
		activeSash:    -1,
		lastPressSash: -1,
	}
	e.OnDidChange = func([]int) { c.syncChildren() }
	e.OnSashReset = c.resetToPreferred
	return c, nil
}

// resetToPreferred is the default reset policy wired to OnSashReset: it
// resizes both of the sash's neighbors toward their declared preferred
// size (spec §6: "typically calls resizeView(index) to the pane's
// preferred size"). A neighbor with no preferred size is left alone.
func (c *Container) resetToPreferred(index int) {
	if pref, ok := c.descriptors[index].PreferredSize(); ok {
		c.engine.ResizeView(index, pref)
	}
	if pref, ok := c.descriptors[index+1].PreferredSize(); ok {
		c.engine.ResizeView(index+1, pref)
	}
}

// Engine exposes the underlying engine, e.g. so a caller can wire
// ResetSash to a double-click or inspect sash state for rendering.
func (c *Container) Engine() *splitview.Engine { return c.engine }

func (c *Container) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, child := range c.children {
		if cmd := child.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (c *Container) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height
		c.engine.Layout(c.primaryExtent())
		c.syncChildren()
		return c, nil

	case tea.MouseMsg:
		if c.handleMouse(msg) {
			return c, nil
		}
	}

	var cmds []tea.Cmd
	for i, child := range c.children {
		updated, cmd := child.Update(msg)
		c.children[i] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return c, tea.Batch(cmds...)
}

func (c *Container) View() string {
	if len(c.children) == 0 {
		return ""
	}

	var parts []string
	for i, child := range c.children {
		parts = append(parts, child.View())
		if i < c.engine.SashCount() {
			parts = append(parts, c.renderSash(i))
		}
	}

	if c.engine.Orientation() == splitview.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// primaryExtent returns the container dimension along the engine's axis.
func (c *Container) primaryExtent() int {
	if c.engine.Orientation() == splitview.Horizontal {
		return c.width - c.engine.SashCount()*sashWidth
	}
	return c.height - c.engine.SashCount()*sashWidth
}

// pointerCoord returns the mouse event's coordinate along the engine's
// primary axis.
func (c *Container) pointerCoord(msg tea.MouseMsg) int {
	if c.engine.Orientation() == splitview.Horizontal {
		return msg.X
	}
	return msg.Y
}

// syncChildren pushes each item's current size down to its child model as
// a WindowSizeMsg sized along the primary axis, full extent on the
// orthogonal axis.
func (c *Container) syncChildren() {
	horizontal := c.engine.Orientation() == splitview.Horizontal
	for i, child := range c.children {
		size := c.engine.GetViewSize(i)
		if size < 0 {
			continue
		}
		var resize tea.WindowSizeMsg
		if horizontal {
			resize = tea.WindowSizeMsg{Width: size, Height: c.height}
		} else {
			resize = tea.WindowSizeMsg{Width: c.width, Height: size}
		}
		updated, _ := child.Update(resize)
		c.children[i] = updated
	}
}

// handleMouse drives StartDrag/ChangeDrag/EndDrag from raw mouse events,
// the same press/motion/release state machine as the teacher reference's
// DragHandler, but delegating all size math to the engine.
func (c *Container) handleMouse(msg tea.MouseMsg) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		for i := 0; i < c.engine.SashCount(); i++ {
			if !zone.Get(c.sashZoneID(i)).InBounds(msg) {
				continue
			}
			now := time.Now()
			if i == c.lastPressSash && now.Sub(c.lastPressAt) < doubleClickWindow {
				c.lastPressSash = -1
				_ = c.engine.ResetSash(i)
				return true
			}
			c.lastPressSash = i
			c.lastPressAt = now
			if err := c.engine.StartDrag(i, c.pointerCoord(msg)); err == nil {
				c.dragging = true
				c.activeSash = i
			}
			return true
		}
		return false

	case tea.MouseActionMotion:
		if !c.dragging {
			return false
		}
		_ = c.engine.ChangeDrag(c.pointerCoord(msg))
		c.syncChildren()
		return true

	case tea.MouseActionRelease:
		if !c.dragging || msg.Button != tea.MouseButtonLeft {
			return false
		}
		_ = c.engine.EndDrag()
		c.dragging = false
		c.activeSash = -1
		c.syncChildren()
		return true
	}
	return false
}

func (c *Container) sashZoneID(index int) string {
	return c.id + "sash_" + strconv.Itoa(index)
}

func (c *Container) renderSash(index int) string {
	active := c.dragging && c.activeSash == index
	style := sashStyle
	if active {
		style = sashActiveStyle
	}

	if c.engine.Orientation() == splitview.Horizontal {
		bar := ""
		for i := 0; i < c.height; i++ {
			if i > 0 {
				bar += "\n"
			}
			bar += "│"
		}
		return zone.Mark(c.sashZoneID(index), style.Render(bar))
	}

	return zone.Mark(c.sashZoneID(index), style.Width(c.width).Render("─"))
}
