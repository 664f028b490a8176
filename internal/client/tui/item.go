package tui

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/gcla/gowid"
	"github.com/gcla/gowid/widgets/edit"
	"github.com/gcla/gowid/widgets/selectable"
	"github.com/gcla/gowid/widgets/styled"
	"github.com/gcla/gowid/widgets/text"
	"github.com/mdouchement/todoapp/pkg/libtodo"
)

// An Item is the graphical representation of a libtodo.Todo.
type Item struct {
	ID                 string
	presentation       gowid.IWidget
	abstraction        *libtodo.Todo
	editorPresentation *edit.Widget
}

// NewItem returns a new Item. Edits in the description editor are debounced
// and handed to save.
func NewItem(todo *libtodo.Todo, save func(id, description string)) *Item {
	editor := edit.New(edit.Options{Text: todo.Description})
	debounced := debounce.New(500 * time.Millisecond)
	editor.OnTextSet(gowid.WidgetCallback{Name: "cb", WidgetChangedFunction: func(app gowid.IApp, iw gowid.IWidget) {
		debounced(func() {
			save(todo.ID, editor.Text())
		})
	}})

	return &Item{
		ID: todo.ID,
		presentation: selectable.New(
			styled.NewExt(
				text.New(label(todo)),
				gowid.MakePaletteRef("normal"), gowid.MakePaletteRef("focused"),
			),
		),
		editorPresentation: editor,
		abstraction:        todo,
	}
}

func label(todo *libtodo.Todo) string {
	checkbox := "[ ]"
	if todo.Completed {
		checkbox = "[x]"
	}
	return fmt.Sprintf("%s %s (%s)", checkbox, todo.Title, todo.Priority)
}

// Title returns the name of the detail pane.
func (w *Item) Title() string {
	return w.abstraction.Title
}

// Completed returns the completed flag of the underlying todo.
func (w *Item) Completed() bool {
	return w.abstraction.Completed
}

// Editor returns the description editor of the Item.
func (w *Item) Editor() *edit.Widget {
	return w.editorPresentation
}

////////////////////
//                //
// Delegates      //
//                //
////////////////////

// Render implements gowid.IWidget
func (w *Item) Render(size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) gowid.ICanvas {
	return w.presentation.Render(size, focus, app)
}

// RenderSize implements gowid.IWidget
func (w *Item) RenderSize(size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) gowid.IRenderBox {
	return w.presentation.RenderSize(size, focus, app)
}

// UserInput implements gowid.IWidget
func (w *Item) UserInput(ev any, size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) bool {
	return w.presentation.UserInput(ev, size, focus, app)
}

// Selectable implements gowid.IWidget
func (w *Item) Selectable() bool {
	return w.presentation.Selectable()
}
