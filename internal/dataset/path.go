package dataset

import (
	"net/url"
	"strings"
)

// ResolveImagePath turns a record's raw relative path into the served asset
// location under root. The offline pipeline writes Windows-style paths with
// spaces; the deployed tree uses forward slashes and underscores, and the
// result is percent-encoded per segment so it is safe in a URL.
func ResolveImagePath(root, rel string) string {
	if rel == "" {
		return ""
	}

	p := strings.ReplaceAll(rel, "\\", "/")
	p = strings.ReplaceAll(p, " ", "_")
	p = strings.TrimPrefix(p, "/")

	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	encoded := strings.Join(segments, "/")

	if root == "" {
		return encoded
	}
	return strings.TrimSuffix(root, "/") + "/" + encoded
}
