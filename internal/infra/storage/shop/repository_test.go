package shop

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repository scans every column in configColumns, so each one has
// to exist in the shipped shop_config DDL or Get fails on a live
// database.
func TestConfigColumns_MatchSchema(t *testing.T) {
	ddl, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)

	start := strings.Index(string(ddl), "CREATE TABLE shop_config")
	require.NotEqual(t, -1, start, "shop_config DDL missing from the initial migration")
	block := string(ddl)[start:]
	end := strings.Index(block, ");")
	require.NotEqual(t, -1, end)
	block = block[:end]

	for _, column := range configColumns {
		assert.Contains(t, block, column, "shop_config DDL must define column %q", column)
	}
}
