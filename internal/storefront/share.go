package storefront

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownPlatform is returned for unsupported share targets
var ErrUnknownPlatform = errors.New("unknown share platform")

// Platform is a share target
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformTwitter  Platform = "twitter"
	PlatformEmail    Platform = "email"
)

// ParsePlatform accepts a platform name or its first letter
func ParsePlatform(raw string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "facebook", "f":
		return PlatformFacebook, nil
	case "twitter", "t":
		return PlatformTwitter, nil
	case "email", "e":
		return PlatformEmail, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, raw)
}

// ShareURL builds the link that shares pageURL with title on platform
func ShareURL(platform Platform, pageURL, title string) (string, error) {
	switch platform {
	case PlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + encodeComponent(pageURL), nil
	case PlatformTwitter:
		return "https://twitter.com/intent/tweet?url=" + encodeComponent(pageURL) +
			"&text=" + encodeComponent(title), nil
	case PlatformEmail:
		return "mailto:?subject=" + encodeComponent(title) + "&body=" + encodeComponent(pageURL), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, string(platform))
}

// ProductURL returns the storefront page of a product
func ProductURL(baseURL string, productID int) string {
	return strings.TrimRight(baseURL, "/") + "/product/" + strconv.Itoa(productID)
}

// encodeComponent percent-encodes everything except the URI component unreserved set
func encodeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
