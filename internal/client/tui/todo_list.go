package tui

import (
	"github.com/gcla/gowid"
	"github.com/gcla/gowid/widgets/list"
	"github.com/gdamore/tcell/v2"
)

// A TodoList is a list of Items to interract with.
// It implements gowid.IWidget by delegating to its presentation.
type TodoList struct {
	ui           *TUI
	presentation list.IWidget
	abstraction  *todoListAbstraction
}

// NewTodoList returns a new TodoList.
func NewTodoList(ui *TUI) *TodoList {
	abs := newTodoListAbstraction()

	return &TodoList{
		ui:           ui,
		presentation: list.New(abs),
		abstraction:  abs,
	}
}

// Reload rebuilds the list widgets from the controller snapshot.
// The focus is clamped so the cursor survives removals.
func (w *TodoList) Reload(app gowid.IApp) {
	w.abstraction.widgets = w.abstraction.widgets[:0]

	for _, todo := range w.ui.actions.Todos() {
		todo := todo
		w.abstraction.widgets = append(w.abstraction.widgets, NewItem(todo, func(id, description string) {
			w.ui.mutate(func() { w.ui.actions.SetDescription(id, description) })
		}))
	}

	if int(w.abstraction.focus) >= w.abstraction.Length() {
		w.abstraction.focus = list.ListPos(w.abstraction.Length() - 1)
	}
	if w.abstraction.focus < 0 {
		w.abstraction.focus = 0
	}
	w.displayFocusedTodo(app)
}

func (w *TodoList) focused() *Item {
	item, _ := w.abstraction.At(w.abstraction.Focus()).(*Item)
	return item
}

// displayFocusedTodo fills the detail pane with the focused todo.
func (w *TodoList) displayFocusedTodo(app gowid.IApp) {
	item := w.focused()
	if item == nil {
		return
	}
	w.ui.detail.SetTitle(item.Title(), app)
	w.ui.detail.SetSubWidget(item.Editor(), app)
}

////////////////////
//                //
// Delegates      //
//                //
////////////////////

// Render implements gowid.IWidget
func (w *TodoList) Render(size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) gowid.ICanvas {
	return w.presentation.Render(size, focus, app)
}

// RenderSize implements gowid.IWidget
func (w *TodoList) RenderSize(size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) gowid.IRenderBox {
	return w.presentation.RenderSize(size, focus, app)
}

// UserInput implements gowid.IWidget
func (w *TodoList) UserInput(ev any, size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) bool {
	if evk, ok := ev.(*tcell.EventKey); ok {
		if item := w.focused(); item != nil {
			switch {
			case evk.Key() == tcell.KeyEnter, evk.Key() == tcell.KeyRune && evk.Rune() == ' ':
				w.ui.mutate(func() { w.ui.actions.ToggleItem(item.ID, item.Completed()) })
				return true
			case evk.Key() == tcell.KeyCtrlD:
				w.ui.mutate(func() { w.ui.actions.RemoveItem(item.ID) })
				return true
			}
		}
	}

	ok := w.presentation.UserInput(ev, size, focus, app)

	if evm, ok := ev.(*tcell.EventMouse); !ok || evm.Buttons() != tcell.ButtonNone {
		// Avoid next action on mouse hover event
		w.displayFocusedTodo(app)
	}
	return ok
}

// Selectable implements gowid.IWidget
func (w *TodoList) Selectable() bool {
	return w.presentation.Selectable()
}

////////////////////
//                //
// Abstraction    //
//                //
////////////////////

// A todoListAbstraction is a list of Items to interract with.
// It implements list.IWalker interface.
type todoListAbstraction struct {
	widgets []*Item
	focus   list.ListPos
}

func newTodoListAbstraction() *todoListAbstraction {
	return &todoListAbstraction{
		widgets: make([]*Item, 0),
		focus:   0,
	}
}

func (w *todoListAbstraction) First() list.IWalkerPosition {
	if len(w.widgets) == 0 {
		return nil
	}
	return list.ListPos(0)
}

func (w *todoListAbstraction) Last() list.IWalkerPosition {
	if len(w.widgets) == 0 {
		return nil
	}
	return list.ListPos(len(w.widgets) - 1)
}

func (w *todoListAbstraction) Length() int {
	return len(w.widgets)
}

func (w *todoListAbstraction) At(pos list.IWalkerPosition) gowid.IWidget {
	var res gowid.IWidget
	ipos := int(pos.(list.ListPos))
	if ipos >= 0 && ipos < w.Length() {
		res = w.widgets[ipos]
	}
	return res
}

func (w *todoListAbstraction) Focus() list.IWalkerPosition {
	return w.focus
}

func (w *todoListAbstraction) SetFocus(focus list.IWalkerPosition, app gowid.IApp) {
	w.focus = focus.(list.ListPos)
}

func (w *todoListAbstraction) Next(ipos list.IWalkerPosition) list.IWalkerPosition {
	pos := ipos.(list.ListPos)
	if int(pos) == w.Length()-1 {
		return list.ListPos(-1)
	}
	return pos + 1
}

func (w *todoListAbstraction) Previous(ipos list.IWalkerPosition) list.IWalkerPosition {
	pos := ipos.(list.ListPos)
	if pos-1 == -1 {
		return list.ListPos(-1)
	}
	return pos - 1
}
