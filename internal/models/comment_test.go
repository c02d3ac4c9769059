package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	valid := Comment{
		PostID:  1,
		Name:    "Reader",
		Email:   "reader@example.com",
		Website: "https://example.com",
		Content: "Nice post.",
	}

	tests := []struct {
		name    string
		mutate  func(c *Comment)
		wantErr bool
	}{
		{"valid", func(c *Comment) {}, false},
		{"no website is fine", func(c *Comment) { c.Website = "" }, false},
		{"missing name", func(c *Comment) { c.Name = "" }, true},
		{"malformed email", func(c *Comment) { c.Email = "not-an-email" }, true},
		{"malformed website", func(c *Comment) { c.Website = "not a url" }, true},
		{"empty content", func(c *Comment) { c.Content = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
