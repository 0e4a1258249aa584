package server_test

import (
	"testing"

	"altered-knowledge/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ListenAddr(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Plain", "8080", ":8080"},
		{"With Colon", ":9000", ":9000"},
		{"Spaces", " 3000 ", ":3000"},
		{"Empty", "", ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.ListenAddr())
		})
	}
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 512*1024, server.Config{}.BodyLimit())
	assert.Equal(t, 1024, server.Config{BodyLimitKB: 1}.BodyLimit())
}
