//go:build js && wasm

package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"syscall/js"
)

// LIFF is the Service backed by the browser's liff global.
type LIFF struct {
	sdk   js.Value
	ready bool
}

// NewLIFF binds to window.liff. Init reports ErrUnavailable when the SDK script
// was not loaded.
func NewLIFF() *LIFF {
	return &LIFF{sdk: js.Global().Get("liff")}
}

func (l *LIFF) available() bool {
	return l.sdk.Truthy()
}

func (l *LIFF) Init(ctx context.Context, cfg Config) error {
	if !l.available() {
		return ErrUnavailable
	}
	if cfg.AppID == "" {
		return errors.New("platform: missing app id")
	}

	if _, err := await(ctx, l.sdk.Call("init", map[string]any{"liffId": cfg.AppID})); err != nil {
		return fmt.Errorf("liff init: %w", err)
	}
	l.ready = true
	return nil
}

func (l *LIFF) Profile(ctx context.Context) (Profile, error) {
	if !l.ready {
		return Profile{}, ErrNotInitialized
	}

	v, err := await(ctx, l.sdk.Call("getProfile"))
	if err != nil {
		return Profile{}, fmt.Errorf("liff getProfile: %w", err)
	}
	return Profile{
		UserID:        stringField(v, "userId"),
		DisplayName:   stringField(v, "displayName"),
		PictureURL:    stringField(v, "pictureUrl"),
		StatusMessage: stringField(v, "statusMessage"),
	}, nil
}

func (l *LIFF) ShareAvailable(target string) bool {
	if !l.ready {
		return false
	}
	return l.sdk.Call("isApiAvailable", target).Truthy()
}

func (l *LIFF) Share(ctx context.Context, messages []Message) (bool, error) {
	if !l.ready {
		return false, ErrNotInitialized
	}

	raw, err := json.Marshal(messages)
	if err != nil {
		return false, fmt.Errorf("encode messages: %w", err)
	}
	payload := js.Global().Get("JSON").Call("parse", string(raw))

	res, err := await(ctx, l.sdk.Call("shareTargetPicker", payload))
	if err != nil {
		return false, fmt.Errorf("liff shareTargetPicker: %w", err)
	}
	// The picker resolves with undefined when closed without sending.
	return res.Truthy(), nil
}

func stringField(v js.Value, key string) string {
	if !v.Truthy() {
		return ""
	}
	f := v.Get(key)
	if f.Type() != js.TypeString {
		return ""
	}
	return f.String()
}

type settled struct {
	value js.Value
	err   error
}

// await blocks the calling goroutine until promise settles or ctx is done. It
// must not be called from the JS event loop goroutine.
func await(ctx context.Context, promise js.Value) (js.Value, error) {
	ch := make(chan settled, 1)

	var onResolve, onReject js.Func
	release := func() {
		onResolve.Release()
		onReject.Release()
	}
	onResolve = js.FuncOf(func(_ js.Value, args []js.Value) any {
		v := js.Undefined()
		if len(args) > 0 {
			v = args[0]
		}
		ch <- settled{value: v}
		return nil
	})
	onReject = js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "promise rejected"
		if len(args) > 0 && args[0].Truthy() {
			if m := args[0].Get("message"); m.Type() == js.TypeString {
				msg = m.String()
			} else {
				msg = args[0].Call("toString").String()
			}
		}
		ch <- settled{err: errors.New(msg)}
		return nil
	})
	promise.Call("then", onResolve, onReject)

	select {
	case r := <-ch:
		release()
		return r.value, r.err
	case <-ctx.Done():
		// The callbacks stay registered; releasing them while the promise is
		// pending would panic when it settles.
		return js.Undefined(), ctx.Err()
	}
}
