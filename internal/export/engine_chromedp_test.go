package export

import (
	"testing"

	"github.com/chromedp/cdproto/page"
)

func TestNetworkIdleListenerFiresOnceOnNetworkIdle(t *testing.T) {
	fired := 0
	listener := networkIdleListener(func() { fired++ })

	listener(&page.EventLifecycleEvent{Name: "DOMContentLoaded"})
	listener(&page.EventLifecycleEvent{Name: "load"})
	listener(&page.EventLoadEventFired{})
	if fired != 0 {
		t.Fatalf("expected no callback before networkIdle, got %d", fired)
	}

	listener(&page.EventLifecycleEvent{Name: "networkIdle"})
	if fired != 1 {
		t.Fatalf("expected callback on networkIdle, got %d", fired)
	}

	// Chrome can emit the event again after later fetches settle.
	listener(&page.EventLifecycleEvent{Name: "networkIdle"})
	if fired != 1 {
		t.Fatalf("expected one-shot callback, got %d", fired)
	}
}
