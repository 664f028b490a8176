package tui

import (
	"time"

	"github.com/gcla/gowid"
	"github.com/gcla/gowid/widgets/edit"
	"github.com/gcla/gowid/widgets/framed"
	"github.com/gcla/gowid/widgets/null"
	"github.com/gcla/gowid/widgets/pile"
	"github.com/gcla/gowid/widgets/styled"
	"github.com/gcla/gowid/widgets/text"
	"github.com/gdamore/tcell/v2"
	"github.com/mdouchement/todoapp/pkg/libtodo"
	"github.com/pkg/errors"
)

// Actions is the contract between the interface and the list controller.
type Actions interface {
	// Todos returns the current snapshot of the list.
	Todos() []*libtodo.Todo
	// Err returns the message of the last failed action, or an empty string.
	Err() string
	// Refresh replaces the snapshot with the server's full list.
	Refresh()
	// AddItem creates a todo then re-fetches the list.
	AddItem(title string)
	// ToggleItem flips the completed flag then re-fetches the list.
	ToggleItem(id string, currentCompleted bool)
	// SetDescription replaces a todo's description then re-fetches the list.
	SetDescription(id, description string)
	// RemoveItem deletes a todo then re-fetches the list.
	RemoveItem(id string)
}

// A TUI is a text-based interface.
type TUI struct {
	App     *gowid.App
	actions Actions
	list    *TodoList
	detail  *framed.Widget
	input   *edit.Widget
	status  *text.Widget
}

// New returns a new TUI rendering the given controller.
func New(actions Actions) (*TUI, error) {
	ui := new(TUI)
	ui.actions = actions

	app, err := gowid.NewApp(layout(ui))
	if err != nil {
		return ui, errors.Wrap(err, "could not create application widgets")
	}

	ui.App = app
	ui.list.Reload(app)
	return ui, nil
}

// Run starts the application and thus the event loop.
func (ui *TUI) Run() {
	ui.App.MainLoop(gowid.UnhandledInputFunc(ui.unhandled))
}

// Cleanup cleans the application properly (in case of panic).
func (ui *TUI) Cleanup() {
	ui.App.GetScreen().Fini() // Cleanup tcell screen's objects
}

// DisplayStatus displays a message in the status bar (aka notifications).
func (ui *TUI) DisplayStatus(message string) {
	ui.App.Run(gowid.RunFunction(func(app gowid.IApp) { // nolint:errcheck
		ui.status.SetText(message, ui.App)
	}))
	go func() {
		timer := time.NewTimer(1200 * time.Millisecond)
		<-timer.C
		ui.App.Run(gowid.RunFunction(func(app gowid.IApp) { // nolint:errcheck
			ui.status.SetText("", ui.App)
		}))
	}()
}

// mutate runs the given action outside the event loop and then reconciles the
// widgets with the re-fetched snapshot.
func (ui *TUI) mutate(action func()) {
	go func() {
		action()
		ui.App.Run(gowid.RunFunction(func(app gowid.IApp) { // nolint:errcheck
			ui.list.Reload(app)
			if msg := ui.actions.Err(); msg != "" {
				ui.status.SetText(msg, app)
				return
			}
			ui.status.SetText("", app)
		}))
	}()
}

////////////////////
//                //
// Layout         //
//                //
////////////////////

func layout(ui *TUI) gowid.AppArgs {
	ui.list = NewTodoList(ui)
	ui.detail = framed.NewUnicode(null.New())
	ui.input = edit.New(edit.Options{Caption: "New todo: "})
	ui.status = text.New("")

	listPane := gowid.ContainerWidget{
		IWidget: styled.New(framed.NewUnicode(ui.list), gowid.MakePaletteRef("mainpane")),
		D:       gowid.RenderWithWeight{W: 1},
	}
	detailPane := gowid.ContainerWidget{
		IWidget: styled.New(ui.detail, gowid.MakePaletteRef("mainpane")),
		D:       gowid.RenderWithWeight{W: 1},
	}

	main := pile.New([]gowid.IContainerWidget{
		&gowid.ContainerWidget{
			IWidget: styled.New(framed.NewUnicode(&addInput{Widget: ui.input, ui: ui}), gowid.MakePaletteRef("mainpane")),
			D:       gowid.RenderWithUnits{U: 3},
		},
		&listPane,
		&detailPane,
		&gowid.ContainerWidget{
			IWidget: styled.New(framed.NewUnicode(ui.status), gowid.MakePaletteRef("mainpane")),
			D:       gowid.RenderWithUnits{U: 3},
		},
	})

	return gowid.AppArgs{
		View: main,
		Palette: &gowid.Palette{
			"mainpane": gowid.MakePaletteEntry(gowid.ColorLightGray, gowid.ColorBlack),
			// List style
			"normal":  gowid.MakePaletteEntry(gowid.ColorLightGray, gowid.ColorBlack),
			"focused": gowid.MakePaletteEntry(gowid.ColorBlack, gowid.ColorRed),
		},
		Log: NewLogger(),
	}
}

////////////////////
//                //
// Input          //
//                //
////////////////////

// An addInput is the edit widget used to create todos.
// Enter submits the trimmed title and clears the field.
type addInput struct {
	*edit.Widget
	ui *TUI
}

// UserInput implements gowid.IWidget
func (w *addInput) UserInput(ev any, size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) bool {
	if evk, ok := ev.(*tcell.EventKey); ok && evk.Key() == tcell.KeyEnter {
		title := w.Widget.Text()
		w.Widget.SetText("", app)
		w.ui.mutate(func() { w.ui.actions.AddItem(title) })
		return true
	}
	return w.Widget.UserInput(ev, size, focus, app)
}

////////////////////
//                //
// Events         //
//                //
////////////////////

func (ui *TUI) unhandled(app gowid.IApp, ev any) bool {
	evk, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	handled := false

	switch evk.Key() {
	case tcell.KeyCtrlQ:
		handled = true
		app.Quit()
	case tcell.KeyCtrlR:
		handled = true
		ui.mutate(ui.actions.Refresh)
	}

	return handled
}
