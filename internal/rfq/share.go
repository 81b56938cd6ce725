package rfq

import (
	"net/url"
	"strings"
)

// ShareLinks are the outbound representations of an assembled message. The
// sinks perform no transformation of their own beyond URL encoding: the
// clipboard gets the text verbatim, email and WhatsApp get prebuilt links.
type ShareLinks struct {
	Text     string `json:"text"`
	Mailto   string `json:"mailto"`
	WhatsApp string `json:"whatsapp"`
}

// BuildShareLinks derives the share targets for an assembled message.
func BuildShareLinks(company Company, text string) ShareLinks {
	return ShareLinks{
		Text:     text,
		Mailto:   "mailto:?subject=" + escape("RFQ - "+string(company)) + "&body=" + escape(text),
		WhatsApp: "https://wa.me/?text=" + escape(text),
	}
}

// escape percent-encodes a query component, using %20 rather than + for
// spaces so the links work in mail clients as well as browsers.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
