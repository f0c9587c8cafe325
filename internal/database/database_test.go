package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolioapi/internal/config"
)

func TestNewMongoInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MongoConfig
		wantMsg string
	}{
		{
			name:    "missing url",
			cfg:     config.MongoConfig{Database: "portfolio"},
			wantMsg: "url is required",
		},
		{
			name:    "missing database",
			cfg:     config.MongoConfig{URL: "mongodb://localhost:27017"},
			wantMsg: "database name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, db, err := NewMongo(tt.cfg)
			assert.Nil(t, client)
			assert.Nil(t, db)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
