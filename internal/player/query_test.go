package player

import "testing"

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "https url passthrough", input: "https://youtu.be/dQw4w9WgXcQ", want: "https://youtu.be/dQw4w9WgXcQ"},
		{name: "http url passthrough", input: "http://example.com/track.mp3", want: "http://example.com/track.mp3"},
		{name: "ytsearch passthrough", input: "ytsearch:some song", want: "ytsearch:some song"},
		{name: "ytmsearch passthrough", input: "ytmsearch:some song", want: "ytmsearch:some song"},
		{name: "scsearch passthrough", input: "scsearch:some song", want: "scsearch:some song"},
		{name: "spsearch passthrough", input: "spsearch:some song", want: "spsearch:some song"},
		{name: "free text gets default prefix", input: "some song", want: "ytsearch:some song"},
		{name: "prefix must be leading", input: "play ytsearch:foo", want: "ytsearch:play ytsearch:foo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildSearchQuery(tc.input); got != tc.want {
				t.Errorf("BuildSearchQuery(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
