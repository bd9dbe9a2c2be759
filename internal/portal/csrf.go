package portal

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
)

// extractCSRFToken scans rendered login-page markup for the
// <meta name="csrf-token" content="..."> tag the portal embeds in its head.
//
// An absent or empty token fails with [ErrAuth]: without it the login POST is
// rejected, so there is no point continuing the handshake.
func extractCSRFToken(markup []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("%w: parse login page: %v", ErrAuth, err)
	}

	if token := findCSRFMeta(doc); token != "" {
		return token, nil
	}

	return "", fmt.Errorf("%w: csrf-token meta tag not found", ErrAuth)
}

func findCSRFMeta(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "meta" {
		var name, content string
		for _, attr := range n.Attr {
			switch attr.Key {
			case "name":
				name = attr.Val
			case "content":
				content = attr.Val
			}
		}
		if name == "csrf-token" {
			return content
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if token := findCSRFMeta(child); token != "" {
			return token
		}
	}

	return ""
}
