// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/scrollfeed/internal/platform/migration"
)

/*
TestConvertToPgx5DSN covers the scheme rewrite used before migrate.New.
*/
func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/feed", "pgx5://u:p@localhost:5432/feed"},
		{"postgresql://u:p@localhost/feed?sslmode=disable", "pgx5://u:p@localhost/feed?sslmode=disable"},
		{"pgx5://u@localhost/feed", "pgx5://u@localhost/feed"},
		{"host=localhost dbname=feed", "host=localhost dbname=feed"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ConvertToPgx5DSN(tt.in))
		})
	}
}
