//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestLingostatWithMySQL tests the lingostat CLI with a MySQL backend.
func TestLingostatWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "lingostat",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/lingostat?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("LINGOSTAT_CACHE_BACKEND", "mysql")
	_ = os.Setenv("LINGOSTAT_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("LINGOSTAT_HISTORY_BACKEND", "mysql")
	_ = os.Setenv("LINGOSTAT_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("LINGOSTAT_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("LINGOSTAT_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("LINGOSTAT_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("LINGOSTAT_HISTORY_DB_CONNECT") }()

	runBackendScenario(t)
}

// TestLingostatWithPostgres tests the lingostat CLI with a PostgreSQL backend.
func TestLingostatWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("LINGOSTAT_CACHE_BACKEND", "postgresql")
	_ = os.Setenv("LINGOSTAT_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("LINGOSTAT_HISTORY_BACKEND", "postgresql")
	_ = os.Setenv("LINGOSTAT_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("LINGOSTAT_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("LINGOSTAT_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("LINGOSTAT_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("LINGOSTAT_HISTORY_DB_CONNECT") }()

	runBackendScenario(t)
}

// runBackendScenario runs the standard command sequence against whatever
// backend the environment points at.
func runBackendScenario(t *testing.T) {
	t.Helper()
	exportDir := writeSampleExportDir(t)

	// Run lingostat cache clear
	err := runLingostatCommand(t, "cache", "clear")
	require.NoError(t, err)

	// Run lingostat history clear
	err = runLingostatCommand(t, "history", "clear")
	require.NoError(t, err)

	// Run lingostat records on the sample export (populates cache and history)
	err = runLingostatCommand(t, "records", exportDir, "--limit", "5")
	require.NoError(t, err)

	// Run again to exercise the cache-hit path
	err = runLingostatCommand(t, "records", exportDir, "--limit", "5")
	require.NoError(t, err)

	// Run lingostat cache status
	err = runLingostatCommand(t, "cache", "status")
	require.NoError(t, err)

	// Run lingostat history status
	err = runLingostatCommand(t, "history", "status")
	require.NoError(t, err)
}

func runLingostatCommand(t *testing.T, args ...string) error {
	lingostatPath := getLingostatBinary()
	cmd := exec.Command(lingostatPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
