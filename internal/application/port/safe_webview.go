package port

import "context"

// SafeWebView wraps wv so that a missing or destroyed engine degrades to safe
// values instead of failing: loading reads true, history and inspector flags
// read false, and every action is a no-op.
func SafeWebView(wv WebView) WebView {
	if s, ok := wv.(*safeWebView); ok {
		return s
	}
	return &safeWebView{inner: wv}
}

type safeWebView struct {
	inner WebView
}

func (s *safeWebView) available() bool {
	return s.inner != nil && !s.inner.IsDestroyed()
}

func (s *safeWebView) IsLoading() bool {
	if !s.available() {
		return true
	}
	return s.inner.IsLoading()
}

func (s *safeWebView) CanGoBack() bool {
	return s.available() && s.inner.CanGoBack()
}

func (s *safeWebView) CanGoForward() bool {
	return s.available() && s.inner.CanGoForward()
}

func (s *safeWebView) HasDevToolsOpen() bool {
	return s.available() && s.inner.HasDevToolsOpen()
}

func (s *safeWebView) Reload(ctx context.Context) error {
	if !s.available() {
		return nil
	}
	return s.inner.Reload(ctx)
}

func (s *safeWebView) Stop(ctx context.Context) error {
	if !s.available() {
		return nil
	}
	return s.inner.Stop(ctx)
}

func (s *safeWebView) GoBack(ctx context.Context) error {
	if !s.available() {
		return nil
	}
	return s.inner.GoBack(ctx)
}

func (s *safeWebView) GoForward(ctx context.Context) error {
	if !s.available() {
		return nil
	}
	return s.inner.GoForward(ctx)
}

func (s *safeWebView) Update(ctx context.Context, update WebViewUpdate) error {
	if !s.available() {
		return nil
	}
	return s.inner.Update(ctx, update)
}

func (s *safeWebView) SetCallbacks(callbacks *WebViewCallbacks) {
	if s.inner != nil {
		s.inner.SetCallbacks(callbacks)
	}
}

func (s *safeWebView) IsDestroyed() bool {
	return s.inner == nil || s.inner.IsDestroyed()
}

func (s *safeWebView) Destroy() {
	if s.available() {
		s.inner.Destroy()
	}
}
