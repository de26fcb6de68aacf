package backend

import (
	"context"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~whereswaldon/hue-wheel/picker"
)

type WindowState struct {
	Bundle
	Controller *stream.Controller
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, win.Invalidate),
	}
}

type Bundle struct {
	Store *Store
	Trace *Trace
}

func NewBundle(initial picker.State) (Bundle, error) {
	store := NewStore(initial)
	trace, err := NewTrace(store)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{
		Store: store,
		Trace: trace,
	}, nil
}
