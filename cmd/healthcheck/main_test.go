// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_AllTablesRegistered(t *testing.T) {
	registry := newRegistry()

	for _, name := range []string{
		"clients",
		"employees",
		"projects",
		"vacations",
		"schedules",
		"status_codes",
		"workloads",
	} {
		table, err := registry.Lookup(name)
		require.NoError(t, err, "table %s", name)
		assert.Equal(t, "id", table.PrimaryKey, "table %s", name)
	}
}
