package utils

import (
	"fmt"
	"net/url"
)

// PlaceholderAvatarURL derives a deterministic placeholder avatar for a
// username. The same username always yields the same image.
func PlaceholderAvatarURL(username string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", url.QueryEscape(username))
}
