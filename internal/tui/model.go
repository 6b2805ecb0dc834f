// Package tui is the interactive front end: a home page comparing the two
// approaches and one page per state container.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/statedemo/internal/config"
	"github.com/alexisbeaulieu97/statedemo/internal/container/provider"
	"github.com/alexisbeaulieu97/statedemo/internal/container/store"
	"github.com/alexisbeaulieu97/statedemo/internal/content"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/statedemo/internal/ports"
	"github.com/alexisbeaulieu97/statedemo/internal/tui/views"
)

// Page identifies a screen.
type Page string

const (
	PageHome    Page = config.PageHome
	PageContext Page = config.PageContext
	PageStore   Page = config.PageStore
)

var pageOrder = []Page{PageHome, PageContext, PageStore}

// Deps are the long-lived services the model renders and mutates.
type Deps struct {
	Context    context.Context
	Provider   *provider.Provider
	Store      *store.Store
	Recorder   *store.Recorder
	Publisher  ports.EventPublisher
	Comparison content.Comparison
	UI         config.UIConfig
	Logger     ports.Logger
}

// Model contains the Bubbletea state for the demo.
type Model struct {
	ctx        context.Context
	logger     ports.Logger
	comparison content.Comparison
	recorder   *store.Recorder
	pages      map[Page]*views.Page
	activity   *activityLog

	page     Page
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	unicode  bool
	history  int
	quitting bool

	width  int
	height int
}

// NewModel wires the context page to deps.Provider through a child context
// and the store page to deps.Store.
func NewModel(deps Deps) (Model, error) {
	if deps.Provider == nil || deps.Store == nil {
		return Model{}, fmt.Errorf("tui needs both a provider and a store")
	}
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	ui := deps.UI
	if ui.StartPage == "" {
		ui = config.Default().UI
	}

	activity := newActivityLog(ui.HistoryLimit)
	if err := activity.attach(deps.Publisher); err != nil {
		return Model{}, err
	}

	start := Page(ui.StartPage)
	if _, ok := pageIndex(start); !ok {
		start = PageHome
	}

	return Model{
		ctx:        ctx,
		logger:     logger.With("component", "tui"),
		comparison: deps.Comparison,
		recorder:   deps.Recorder,
		pages: map[Page]*views.Page{
			PageContext: views.NewContextPage(deps.Provider.Attach(ctx)),
			PageStore:   views.NewStorePage(deps.Store),
		},
		activity: activity,
		page:     start,
		keys:     defaultKeyMap(),
		help:     help.New(),
		unicode:  ui.Unicode,
		history:  ui.HistoryLimit,
		width:    100,
		height:   30,
	}, nil
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Page returns the current page.
func (m Model) Page() Page {
	return m.page
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// ContainerPage returns the views of a container page.
func (m Model) ContainerPage(page Page) (*views.Page, bool) {
	p, ok := m.pages[page]
	return p, ok
}

// Close releases page and publisher subscriptions.
func (m Model) Close() {
	for _, p := range m.pages {
		p.Close()
	}
	m.activity.detach()
}

func pageIndex(page Page) (int, bool) {
	for i, candidate := range pageOrder {
		if candidate == page {
			return i, true
		}
	}
	return 0, false
}
