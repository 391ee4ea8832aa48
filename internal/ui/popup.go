//go:build !nogtk && cgo

package ui

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/cpuguy83/monthpop/internal/calendar"
	"github.com/cpuguy83/monthpop/internal/drag"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

var _ UI = (*Popup)(nil)

// Popup is the borderless month calendar window.
type Popup struct {
	cfg Config

	window     *gtk.Window
	content    *gtk.Box
	monthLabel *gtk.Label
	yearLabel  *gtk.Label
	days       *gtk.Grid

	// Only touched on the GTK main thread.
	month calendar.Month
	today time.Time

	// Manual drag state, used when the window is a layer surface.
	layerShell bool
	origin     drag.Point // top-left margin of the surface
	dragStart  drag.Point // press position in window coordinates
	mover      drag.Mover

	onClose func()
}

// NewPopup creates a new popup window.
func NewPopup(cfg Config) *Popup {
	return &Popup{
		cfg:   cfg,
		month: cfg.Month,
		today: cfg.Today,
	}
}

// Init initializes the GTK widgets. Must be called from GTK main thread.
func (p *Popup) Init() error {
	adw.Init()
	p.applyTheme()

	p.window = gtk.NewWindow()
	p.window.SetTitle("Calendar")
	p.window.SetDefaultSize(p.cfg.Width, p.cfg.Height)
	p.window.SetDecorated(false)
	p.window.SetResizable(false)
	p.window.AddCSSClass("monthpop")

	if gtk4layershell.IsSupported() {
		slog.Debug("layer shell supported")
		p.layerShell = true
		p.initLayerShell()
	} else if p.cfg.AlwaysOnTop {
		slog.Debug("layer shell not supported, always_on_top left to the window manager")
	}

	// Hide on close request
	p.window.ConnectCloseRequest(func() bool {
		p.close()
		return true
	})

	keyController := gtk.NewEventControllerKey()
	keyController.ConnectKeyPressed(func(keyval, keycode uint, state gdk.ModifierType) bool {
		switch keyval {
		case gdk.KEY_Escape:
			p.close()
		case gdk.KEY_Left, gdk.KEY_Page_Up:
			p.navigate(p.month.Prev())
		case gdk.KEY_Right, gdk.KEY_Page_Down:
			p.navigate(p.month.Next())
		case gdk.KEY_Home:
			p.navigate(calendar.MonthOf(p.today))
		default:
			return false
		}
		return true
	})
	p.window.AddController(keyController)

	p.buildUI()
	p.applyCSS()
	p.updateCalendar()
	return nil
}

// initLayerShell places the window on a layer surface anchored to the top-left
// corner so it can be moved by adjusting margins.
func (p *Popup) initLayerShell() {
	gtk4layershell.InitForWindow(p.window)

	layer := gtk4layershell.LayerShellLayerBottom
	if p.cfg.AlwaysOnTop {
		layer = gtk4layershell.LayerShellLayerTop
	}
	gtk4layershell.SetLayer(p.window, layer)
	gtk4layershell.SetAnchor(p.window, gtk4layershell.LayerShellEdgeTop, true)
	gtk4layershell.SetAnchor(p.window, gtk4layershell.LayerShellEdgeLeft, true)
	gtk4layershell.SetKeyboardMode(p.window, gtk4layershell.LayerShellKeyboardModeOnDemand)
	gtk4layershell.SetNamespace(p.window, "monthpop")

	p.moveTo(drag.Point{X: float64(p.cfg.X), Y: float64(p.cfg.Y)})

	gesture := gtk.NewGestureDrag()
	gesture.SetButton(gdk.BUTTON_PRIMARY)
	gesture.ConnectDragBegin(func(startX, startY float64) {
		p.dragStart = drag.Point{X: startX, Y: startY}
		p.mover.Press(p.origin.Add(p.dragStart), p.origin)
	})
	gesture.ConnectDragUpdate(func(offsetX, offsetY float64) {
		// Offsets are relative to the window, which has already moved by
		// the previous deltas, so rebuild the screen position from the origin.
		pointer := p.origin.Add(p.dragStart).Add(drag.Point{X: offsetX, Y: offsetY})
		if pos, ok := p.mover.Move(pointer); ok {
			p.moveTo(pos)
		}
	})
	gesture.ConnectDragEnd(func(offsetX, offsetY float64) {
		p.mover.Release()
		slog.Debug("popup moved", "x", p.origin.X, "y", p.origin.Y)
	})
	p.window.AddController(gesture)
}

// moveTo sets the layer surface margins so the window's top-left corner is at pos.
func (p *Popup) moveTo(pos drag.Point) {
	pos.X = math.Max(pos.X, 0)
	pos.Y = math.Max(pos.Y, 0)
	p.origin = pos
	gtk4layershell.SetMargin(p.window, gtk4layershell.LayerShellEdgeLeft, int(math.Round(pos.X)))
	gtk4layershell.SetMargin(p.window, gtk4layershell.LayerShellEdgeTop, int(math.Round(pos.Y)))
}

// applyTheme forces the libadwaita color scheme when a theme is configured.
func (p *Popup) applyTheme() {
	scheme := adw.ColorSchemeDefault
	switch p.cfg.Theme {
	case "light":
		scheme = adw.ColorSchemeForceLight
	case "dark":
		scheme = adw.ColorSchemeForceDark
	}
	adw.StyleManagerGetDefault().SetColorScheme(scheme)
}

// buildUI constructs the widget hierarchy.
func (p *Popup) buildUI() {
	p.content = gtk.NewBox(gtk.OrientationVertical, 15)
	p.content.AddCSSClass("calendar-container")

	if p.layerShell {
		p.window.SetChild(p.content)
	} else {
		// Let the compositor move the window when the background is dragged.
		handle := gtk.NewWindowHandle()
		handle.SetChild(p.content)
		p.window.SetChild(handle)
	}

	p.content.Append(p.buildHeader())
	p.content.Append(p.buildWeekdays())

	p.days = gtk.NewGrid()
	p.days.SetRowSpacing(10)
	p.days.SetColumnSpacing(10)
	p.days.SetColumnHomogeneous(true)
	p.days.SetHAlign(gtk.AlignCenter)
	p.content.Append(p.days)

	scroll := gtk.NewEventControllerScroll(gtk.EventControllerScrollVertical | gtk.EventControllerScrollDiscrete)
	scroll.ConnectScroll(func(dx, dy float64) bool {
		switch {
		case dy > 0:
			p.navigate(p.month.Next())
		case dy < 0:
			p.navigate(p.month.Prev())
		default:
			return false
		}
		return true
	})
	p.days.AddController(scroll)
}

// buildHeader creates the month/year row with navigation and close controls.
func (p *Popup) buildHeader() *gtk.Box {
	header := gtk.NewBox(gtk.OrientationHorizontal, 0)
	header.AddCSSClass("calendar-header")

	p.monthLabel = gtk.NewLabel("")
	p.monthLabel.AddCSSClass("month-label")
	p.monthLabel.SetHExpand(true)
	p.monthLabel.SetXAlign(0)
	header.Append(p.monthLabel)

	nav := gtk.NewBox(gtk.OrientationHorizontal, 5)
	header.Append(nav)

	prev := p.newButton("◀", "nav-button", "Previous month")
	prev.ConnectClicked(func() {
		p.navigate(p.month.Prev())
	})
	nav.Append(prev)

	p.yearLabel = gtk.NewLabel("")
	p.yearLabel.AddCSSClass("year-label")
	nav.Append(p.yearLabel)

	next := p.newButton("▶", "nav-button", "Next month")
	next.ConnectClicked(func() {
		p.navigate(p.month.Next())
	})
	nav.Append(next)

	closeBtn := p.newButton("✕", "close-button", "Close")
	closeBtn.ConnectClicked(p.close)
	header.Append(closeBtn)

	return header
}

func (p *Popup) newButton(label, class, tooltip string) *gtk.Button {
	btn := gtk.NewButtonWithLabel(label)
	btn.AddCSSClass(class)
	btn.SetTooltipText(tooltip)
	btn.SetCanFocus(false)
	btn.SetSizeRequest(p.cfg.Style.CellSize, p.cfg.Style.CellSize)
	return btn
}

// buildWeekdays creates the row of weekday initials, aligned with the day grid.
func (p *Popup) buildWeekdays() *gtk.Grid {
	row := gtk.NewGrid()
	row.SetColumnSpacing(10)
	row.SetColumnHomogeneous(true)
	row.SetHAlign(gtk.AlignCenter)

	for col, initial := range calendar.WeekdayInitials {
		label := gtk.NewLabel(initial)
		label.AddCSSClass("weekday-label")
		label.SetSizeRequest(p.cfg.Style.CellSize, -1)
		row.Attach(label, col, 0, 1, 1)
	}
	return row
}

// applyCSS installs the stylesheet on the default display.
func (p *Popup) applyCSS() {
	provider := gtk.NewCSSProvider()
	provider.LoadFromData(p.cfg.Style.CSS())

	if display := gdk.DisplayGetDefault(); display != nil {
		gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	}
}

// navigate switches the displayed month and redraws the grid.
func (p *Popup) navigate(m calendar.Month) {
	slog.Debug("navigate", "from", p.month, "to", m)
	p.month = m
	p.updateCalendar()
}

// updateCalendar rebuilds the header text and day cells for the current month.
func (p *Popup) updateCalendar() {
	if p.days == nil {
		return
	}

	for child := p.days.FirstChild(); child != nil; child = p.days.FirstChild() {
		p.days.Remove(child)
	}

	p.monthLabel.SetText(monthName(p.month))
	p.yearLabel.SetText(strconv.Itoa(p.month.Year))

	for _, cell := range calendar.Grid(p.month, p.today) {
		label := gtk.NewLabel(strconv.Itoa(cell.Day))
		label.AddCSSClass("day-label")
		label.SetSizeRequest(p.cfg.Style.CellSize, p.cfg.Style.CellSize)
		if cell.Today {
			label.AddCSSClass("current-day")
		}
		p.days.Attach(label, cell.Col, cell.Row, 1, 1)
	}
}

// monthName returns the month name in the user's locale.
func monthName(m calendar.Month) string {
	dt := glib.NewDateTimeLocal(m.Year, int(m.Month), 1, 0, 0, 0)
	if dt == nil {
		return m.Month.String()
	}
	if name := dt.Format("%B"); name != "" {
		return name
	}
	return m.Month.String()
}

// Show shows the popup window.
func (p *Popup) Show() {
	if p.window == nil {
		return
	}
	glib.IdleAdd(func() {
		p.window.SetVisible(true)
		p.window.Present()
	})
}

// Hide hides the popup window.
func (p *Popup) Hide() {
	if p.window == nil {
		return
	}
	glib.IdleAdd(p.hide)
}

func (p *Popup) hide() {
	p.mover.Release()
	p.window.SetVisible(false)
}

// Toggle shows or hides the popup.
func (p *Popup) Toggle() {
	if p.window == nil {
		return
	}
	glib.IdleAdd(func() {
		if p.window.IsVisible() {
			p.hide()
		} else {
			p.window.SetVisible(true)
			p.window.Present()
		}
	})
}

// Step moves the displayed month by n months.
func (p *Popup) Step(n int) {
	if p.window == nil || n == 0 {
		return
	}
	glib.IdleAdd(func() {
		p.navigate(calendar.Month{Year: p.month.Year, Month: p.month.Month + time.Month(n)}.Normalize())
	})
}

// SetToday updates the current-day highlight.
func (p *Popup) SetToday(today time.Time) {
	glib.IdleAdd(func() {
		p.today = today
		p.updateCalendar()
	})
}

// OnClose sets the callback for when the close control is used.
// Without a callback the popup just hides.
func (p *Popup) OnClose(fn func()) {
	p.onClose = fn
}

func (p *Popup) close() {
	if p.onClose != nil {
		p.onClose()
		return
	}
	p.hide()
}
