package dataset

import "testing"

func TestResolveImagePath(t *testing.T) {
	cases := []struct {
		name string
		root string
		rel  string
		want string
	}{
		{
			name: "plain",
			root: "public",
			rel:  "Midjourney1/tower.webp",
			want: "public/Midjourney1/tower.webp",
		},
		{
			name: "backslashes normalized",
			root: "public",
			rel:  `Midjourney 8\tower 01.webp`,
			want: "public/Midjourney_8/tower_01.webp",
		},
		{
			name: "leading separator stripped",
			root: "public",
			rel:  "/img/a.webp",
			want: "public/img/a.webp",
		},
		{
			name: "root trailing slash",
			root: "public/",
			rel:  "a.webp",
			want: "public/a.webp",
		},
		{
			name: "percent encoding",
			root: "public",
			rel:  "집/한옥#1.webp",
			want: "public/%EC%A7%91/%ED%95%9C%EC%98%A5%231.webp",
		},
		{
			name: "empty rel",
			root: "public",
			rel:  "",
			want: "",
		},
		{
			name: "no root",
			root: "",
			rel:  "img/a.webp",
			want: "img/a.webp",
		},
	}

	for _, tc := range cases {
		if got := ResolveImagePath(tc.root, tc.rel); got != tc.want {
			t.Errorf("%s: ResolveImagePath(%q, %q) = %q, want %q", tc.name, tc.root, tc.rel, got, tc.want)
		}
	}
}
