package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticle_JoinedBody(t *testing.T) {
	article := &Article{Body: []string{"A", "B", "C"}}
	assert.Equal(t, "A\nB\nC", article.JoinedBody())

	empty := &Article{}
	assert.Equal(t, "", empty.JoinedBody())
}

func TestArticle_Complete(t *testing.T) {
	full := Article{
		Title:      "Title",
		Category:   "News",
		CreateDate: "['12:00']",
		Body:       []string{"p1"},
	}

	tests := []struct {
		name    string
		article *Article
		want    bool
	}{
		{name: "all fields present", article: &full, want: true},
		{
			name: "sentinels count as present",
			article: &Article{
				Title: NoneValue, Category: NoneValue, CreateDate: NoneValue, Body: []string{""},
			},
			want: true,
		},
		{name: "empty body is skipped", article: &Article{Title: "T", Category: "C", CreateDate: "D"}, want: false},
		{name: "empty title", article: &Article{Category: "C", CreateDate: "D", Body: []string{"p"}}, want: false},
		{name: "empty category", article: &Article{Title: "T", CreateDate: "D", Body: []string{"p"}}, want: false},
		{name: "empty date", article: &Article{Title: "T", Category: "C", Body: []string{"p"}}, want: false},
		{name: "nil article", article: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.article.Complete())
		})
	}
}
