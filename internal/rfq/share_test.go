package rfq

import (
	"strings"
	"testing"
)

func TestBuildShareLinks(t *testing.T) {
	text := "For Alcast Trading Account:\n\nSwap 500mt"
	links := BuildShareLinks(Company("Alcast Trading"), text)

	t.Run("clipboard text is verbatim", func(t *testing.T) {
		if links.Text != text {
			t.Errorf("Expected text unchanged, got %q", links.Text)
		}
	})

	t.Run("mailto carries company subject", func(t *testing.T) {
		want := "mailto:?subject=RFQ%20-%20Alcast%20Trading&body="
		if !strings.HasPrefix(links.Mailto, want) {
			t.Errorf("Expected mailto prefix %q, got %q", want, links.Mailto)
		}
	})

	t.Run("whatsapp link targets wa.me", func(t *testing.T) {
		if !strings.HasPrefix(links.WhatsApp, "https://wa.me/?text=") {
			t.Errorf("Expected wa.me link, got %q", links.WhatsApp)
		}
	})

	t.Run("spaces encode as %20, never +", func(t *testing.T) {
		for _, link := range []string{links.Mailto, links.WhatsApp} {
			if strings.Contains(link, "+") {
				t.Errorf("Expected no + in link %q", link)
			}
			if !strings.Contains(link, "%20") {
				t.Errorf("Expected %%20 encoding in link %q", link)
			}
		}
	})

	t.Run("newlines are percent-encoded", func(t *testing.T) {
		if !strings.Contains(links.WhatsApp, "%0A") {
			t.Errorf("Expected encoded newlines, got %q", links.WhatsApp)
		}
	})
}
