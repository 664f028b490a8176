package client

import (
	"fmt"
	"runtime"

	"github.com/mdouchement/todoapp/internal/client/tui"
	"github.com/mdouchement/todoapp/pkg/libtodo"
	"github.com/pkg/errors"
)

// Board runs the text-based todo application against the given endpoint.
func Board(endpoint string) error {
	defer func() {
		if r := recover(); r != nil {
			var err error
			switch r := r.(type) {
			case error:
				err = r
			default:
				err = fmt.Errorf("%v", r)
			}
			stack := make([]byte, 4<<10)
			length := runtime.Stack(stack, true)

			tui.NewLogger().Printf("[PANIC RECOVER] %s %s\n", err, stack[:length])
		}
	}()

	api, err := libtodo.NewDefaultClient(endpoint)
	if err != nil {
		return errors.Wrap(err, "could not reach todoapp endpoint")
	}

	controller := NewController(api)
	controller.Refresh()
	if controller.State() == StateError {
		return errors.New(controller.Err())
	}

	//
	//
	ui, err := tui.New(controller)
	if err != nil {
		return err
	}
	defer ui.Cleanup()

	ui.Run()
	return nil
}
