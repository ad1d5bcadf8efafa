package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server struct {
		ListenAddress   string
		ShutdownTimeout time.Duration
	}
	DataBase struct {
		Host string
		Port uint16
	}
}

func TestParseConfigFromEnv(t *testing.T) {
	t.Setenv("TST_SERVER_LISTENADDRESS", ":9090")
	t.Setenv("TST_DATABASE_PORT", "6543")

	config := &testConfig{}
	err := parseConfig(viper.New(), config,
		EnvPrefix("TST"),
		Default("database.host", "localhost"),
		Default("server.shutdowntimeout", "3s"),
	)
	require.NoError(t, err)
	require.Equal(t, ":9090", config.Server.ListenAddress)
	require.Equal(t, uint16(6543), config.DataBase.Port)
	require.Equal(t, "localhost", config.DataBase.Host)
	require.Equal(t, 3*time.Second, config.Server.ShutdownTimeout)
}

func TestParseConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("database:\n  host: db.internal\n  port: 5433\n"), 0o600)
	require.NoError(t, err)

	config := &testConfig{}
	err = parseConfig(viper.New(), config, EnvPrefix("TSTFILE"), ConfigFile(path))
	require.NoError(t, err)
	require.Equal(t, "db.internal", config.DataBase.Host)
	require.Equal(t, uint16(5433), config.DataBase.Port)
}

func TestParseConfigMissingFile(t *testing.T) {
	err := parseConfig(viper.New(), &testConfig{}, ConfigFile(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}
