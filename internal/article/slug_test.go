package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "lowercases and hyphenates",
			title: "My First Post",
			want:  "my-first-post",
		},
		{
			name:  "already lowercase",
			title: "hello",
			want:  "hello",
		},
		{
			name:  "mixed case single word",
			title: "GoLang",
			want:  "golang",
		},
		{
			name:  "multiple spaces are each replaced",
			title: "a  b",
			want:  "a--b",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeSlug(tt.title))
		})
	}
}
