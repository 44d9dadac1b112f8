package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/zaibaitech/asrar-sub000/internal/app"
	"github.com/zaibaitech/asrar-sub000/internal/cli/formatter"
	"github.com/zaibaitech/asrar-sub000/internal/geo"
)

// lookupTimeout caps one location request made from the watch view.
const lookupTimeout = 15 * time.Second

func newWatchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live view of the current hour, updated every tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, a)
		},
	}
}

func runWatch(cmd *cobra.Command, a *App) error {
	m := newWatchModel(cmd.Context(), a)
	_, err := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

type watchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func defaultWatchKeys() watchKeyMap {
	return watchKeyMap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "re-detect location")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

type tickMsg time.Time

// locationMsg carries the outcome of one location request back to the
// model. Only the latest ticket is applied.
type locationMsg struct {
	ticket geo.Ticket
	result *app.LocationResult
	err    error
}

type locateFunc func(context.Context) (*app.LocationResult, error)

type watchModel struct {
	ctx      context.Context
	app      *App
	keys     watchKeyMap
	spinner  spinner.Model
	tracker  *geo.Tracker
	interval time.Duration

	location *app.LocationResult
	locating bool
	resp     *app.NowResponse
	err      error
	quitting bool
}

func newWatchModel(ctx context.Context, a *App) watchModel {
	if ctx == nil {
		ctx = context.Background()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return watchModel{
		ctx:      ctx,
		app:      a,
		keys:     defaultWatchKeys(),
		spinner:  sp,
		tracker:  &geo.Tracker{},
		interval: a.tickInterval(),
		locating: true,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.locate(m.app.Location.Resolve), m.scheduleTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			cmd := m.locate(m.app.Location.Refresh)
			return m, tea.Batch(cmd, m.spinner.Tick)
		}
		return m, nil

	case locationMsg:
		if !m.tracker.Accept(msg.ticket) {
			return m, nil
		}
		m.locating = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.location = msg.result
		m.recompute(m.app.now())
		return m, nil

	case tickMsg:
		if m.location != nil {
			m.recompute(time.Time(msg))
		}
		return m, m.scheduleTick()

	case spinner.TickMsg:
		if !m.locating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// locate starts a location request under a fresh ticket, superseding any
// request still in flight.
func (m *watchModel) locate(fn locateFunc) tea.Cmd {
	ticket := m.tracker.Issue()
	m.locating = true
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, lookupTimeout)
		defer cancel()
		res, err := fn(ctx)
		return locationMsg{ticket: ticket, result: res, err: err}
	}
}

func (m watchModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// recompute refreshes the dashboard for now. A failure keeps the last
// good dashboard on screen under an error banner.
func (m *watchModel) recompute(now time.Time) {
	loc := m.location.Location
	resp, err := m.app.Now.Now(m.ctx, app.NowRequest{Now: &now, Location: &loc})
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.resp = resp
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("ASRAR · PLANETARY HOURS"))
	b.WriteString("\n\n")

	if m.locating {
		b.WriteString(fmt.Sprintf("%s %s\n\n", m.spinner.View(), formatter.Dim("Locating…")))
	}
	if m.err != nil {
		b.WriteString(errorBanner(m.err))
		b.WriteString("\n\n")
	}

	switch {
	case m.resp != nil:
		b.WriteString(formatter.FormatNow(m.resp))
		if m.location != nil {
			b.WriteString(formatter.Warnings(m.location.Warnings))
		}
	case !m.locating && m.err == nil:
		b.WriteString(formatter.Dim("Calculating planetary hours…"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m watchModel) helpView() string {
	parts := make([]string, 0, 2)
	for _, kb := range m.keys.ShortHelp() {
		h := kb.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · "))
}

func errorBanner(err error) string {
	var nowErr *app.NowError
	if errors.As(err, &nowErr) && nowErr.Code == app.ErrNoCurrentHour {
		return formatter.StyleYellow.Render("Calculating planetary hours…")
	}
	return formatter.StyleRed.Render("Error: " + err.Error())
}
