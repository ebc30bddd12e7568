package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/yap/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
//
// Drawing methods must be called from a single goroutine. PollEvent may run
// on another goroutine; tcell synchronizes its event queue internally.
type Terminal struct {
	screen   tcell.Screen
	x, y     int
	finiOnce sync.Once
}

// NewTerminal creates a new terminal backend on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}

	// Mouse reporting stays off: the pager has no mouse bindings.
	t.screen.DisableMouse()
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

func (t *Terminal) Shutdown() {
	t.finiOnce.Do(t.screen.Fini)
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) MoveTo(x, y int) {
	t.x = x
	t.y = y
}

// Print writes text one grapheme cluster per cell group, so combining marks
// stay attached to their base character and wide runes take two columns.
func (t *Terminal) Print(text string, style core.Style) {
	width, height := t.screen.Size()
	if t.y < 0 || t.y >= height {
		return
	}

	st := convertStyle(style)
	state := -1
	for len(text) > 0 {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if w < 1 {
			w = 1
		}
		if t.x+w > width {
			t.x = width
			return
		}
		runes := []rune(cluster)
		t.screen.SetContent(t.x, t.y, runes[0], runes[1:], st)
		t.x += w
	}
}

func (t *Terminal) ClearToEOL() {
	width, _ := t.screen.Size()
	for x := max(t.x, 0); x < width; x++ {
		t.screen.SetContent(x, t.y, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Terminal) NextLine() {
	t.x = 0
	t.y++
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Flush shows queued cells. tcell reports no write errors, so this never
// fails.
func (t *Terminal) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if converted := convertEvent(ev); converted.Type != EventNone {
			return converted
		}
	}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}

	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:   EventMouse,
			MouseX: x,
			MouseY: y,
			Mod:    convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC:
		return KeyCtrlC
	default:
		return KeyNone
	}
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}
