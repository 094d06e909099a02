package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "exports/a.pdf", want: "exports/a.pdf"},
		{name: "simple prefix", prefix: "resumes", key: "exports/a.pdf", want: "resumes/exports/a.pdf"},
		{name: "prefix trailing slash", prefix: "resumes/", key: "exports/a.pdf", want: "resumes/exports/a.pdf"},
		{name: "prefix and key slashes", prefix: "/resumes/", key: "/exports/a.pdf", want: "resumes/exports/a.pdf"},
		{name: "nested prefix", prefix: "resumes/prod", key: "exports/a.pdf", want: "resumes/prod/exports/a.pdf"},
		{name: "empty key", prefix: "resumes", key: "", want: "resumes"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
