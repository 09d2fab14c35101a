package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcap-hotel/staffdesk/internal/config"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		name     string
		db       config.DB
		expected string
	}{
		{
			name: "mysql",
			db: config.DB{
				Engine:   config.EngineMySQL,
				Host:     "localhost",
				Port:     3306,
				User:     "staffdesk",
				Password: "secret",
				Name:     "staffdesk",
				Extras:   "parseTime=true",
			},
			expected: "staffdesk:secret@tcp(localhost:3306)/staffdesk?parseTime=true",
		},
		{
			name: "postgres",
			db: config.DB{
				Engine:   config.EnginePostgres,
				Host:     "localhost",
				Port:     5432,
				User:     "staffdesk",
				Password: "secret",
				Name:     "staffdesk",
				Extras:   "sslmode=disable",
			},
			expected: "host=localhost port=5432 user=staffdesk password=secret dbname=staffdesk sslmode=disable",
		},
		{
			name:     "sqlite with path",
			db:       config.DB{Engine: config.EngineSQLite, Path: "/var/lib/staffdesk/staffdesk.db"},
			expected: "/var/lib/staffdesk/staffdesk.db",
		},
		{
			name:     "sqlite defaults to a local file",
			db:       config.DB{Engine: config.EngineSQLite},
			expected: "staffdesk.db",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{DB: tc.db}
			assert.Equal(t, tc.expected, Create(cfg))
		})
	}
}
