package editor

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"github.com/tradeflow/tradeflow/internal/flowgraph"
	"github.com/tradeflow/tradeflow/internal/pricefeed"
	"github.com/tradeflow/tradeflow/internal/wire"
	"go.uber.org/zap"
)

// gestureKind tags the interaction state machine. Exactly one gesture is
// live at a time; presses arriving mid-gesture are dropped.
type gestureKind int

const (
	gestureIdle gestureKind = iota
	gestureDrag
	gestureConnect
)

// gesture is the transient pointer-interaction state. For a drag, nodeID
// is the moved node and offX/offY the grab offset inside it; for a
// connect, nodeID is the pending source. Never persisted; the only way
// it reaches the store is through explicit operations.
type gesture struct {
	kind       gestureKind
	nodeID     string
	offX, offY int
}

// tickMsg carries one live-price update into the event loop.
type tickMsg pricefeed.Tick

// Options wires the editor's collaborators. Store defaults to a fresh
// store with one canvas; Repo and Feed may be nil.
type Options struct {
	Store *flowgraph.Store
	Repo  *wire.Repository
	Feed  *pricefeed.Client
	Log   *zap.Logger
}

// Model is the bubbletea application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int
	CamX, CamY     int

	store *flowgraph.Store
	gest  gesture
	armed flowgraph.NodeType // palette type pending drop-create, "" when disarmed

	sidebarCollapsed bool

	// Config-panel edit state.
	editing    bool
	editNodeID string
	editKeys   []string
	editInputs []textinput.Model
	editFocus  int

	status   string
	lastTick pricefeed.Tick

	repo *wire.Repository
	feed *pricefeed.Client
	log  *zap.Logger
}

// NewModel builds the editor model.
func NewModel(opts Options) Model {
	st := opts.Store
	if st == nil {
		st = flowgraph.NewStore()
	}
	if len(st.Canvases()) == 0 {
		st.AddCanvas("")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		store: st,
		repo:  opts.Repo,
		feed:  opts.Feed,
		log:   log,
	}
}

// Store exposes the graph store, mainly for tests.
func (m Model) Store() *flowgraph.Store { return m.store }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.feed == nil {
		return nil
	}
	return m.waitTick()
}

// waitTick blocks on the feed channel and turns the next tick into a msg.
func (m Model) waitTick() tea.Cmd {
	return func() tea.Msg {
		t, ok := <-m.feed.Ticks()
		if !ok {
			return nil
		}
		return tickMsg(t)
	}
}
