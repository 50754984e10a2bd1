package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"RUN_ADDRESS", "STORE_URL", "ADMIN_PASSWORD", "MAX_BODY_BYTES", "STORE_MAX_RETRIES",
		"KEEPALIVE_INTERVAL", "KEEPALIVE_FROM", "KEEPALIVE_TO", "KEEPALIVE_TZ", "CORS_ORIGINS",
		"WEB_RUN_ADDRESS", "API_ADDRESS", "SESSION_KEY", "COOKIE_SECURE",
	} {
		t.Setenv(name, "")
	}
}

func TestRead_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	os.Args = []string{"cmd"}

	config, err := Read()
	require.NoError(t, err)

	require.Equal(t, ":5000", config.RunAddress)
	require.Equal(t, "", config.StoreURL)
	require.Equal(t, "", config.AdminPassword)
	require.Equal(t, int64(110*1024*1024), config.MaxBodyBytes)
	require.Equal(t, 0, config.StoreMaxRetries)
	require.Equal(t, 10*time.Minute, config.KeepAliveInterval)
	require.Equal(t, 8, config.KeepAliveFrom)
	require.Equal(t, 22, config.KeepAliveTo)
	require.Equal(t, "Asia/Kolkata", config.KeepAliveTZ)
	require.Equal(t, []string{"*"}, config.CORSOrigins)
}

func TestRead_Flags(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	os.Args = []string{"cmd",
		"-a=:7000",
		"-s=https://script.example/exec",
		"-p=hunter2",
		"-b=1024",
		"-r=2",
		"-i=1m",
		"-from=6",
		"-to=2",
		"-tz=UTC",
	}

	config, err := Read()
	require.NoError(t, err)

	require.Equal(t, ":7000", config.RunAddress)
	require.Equal(t, "https://script.example/exec", config.StoreURL)
	require.Equal(t, "hunter2", config.AdminPassword)
	require.Equal(t, int64(1024), config.MaxBodyBytes)
	require.Equal(t, 2, config.StoreMaxRetries)
	require.Equal(t, time.Minute, config.KeepAliveInterval)
	require.Equal(t, 6, config.KeepAliveFrom)
	require.Equal(t, 2, config.KeepAliveTo)
	require.Equal(t, "UTC", config.KeepAliveTZ)
}

func TestRead_EnvVars(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	os.Args = []string{"cmd"}

	t.Setenv("RUN_ADDRESS", ":9000")
	t.Setenv("STORE_URL", "https://env.example/exec")
	t.Setenv("ADMIN_PASSWORD", "env_secret")
	t.Setenv("STORE_MAX_RETRIES", "3")
	t.Setenv("KEEPALIVE_INTERVAL", "30s")
	t.Setenv("CORS_ORIGINS", "https://printbee.example,http://localhost:3000")

	config, err := Read()
	require.NoError(t, err)

	require.Equal(t, ":9000", config.RunAddress)
	require.Equal(t, "https://env.example/exec", config.StoreURL)
	require.Equal(t, "env_secret", config.AdminPassword)
	require.Equal(t, 3, config.StoreMaxRetries)
	require.Equal(t, 30*time.Second, config.KeepAliveInterval)
	require.Equal(t, []string{"https://printbee.example", "http://localhost:3000"}, config.CORSOrigins)
}

func TestRead_EnvOverridesFlags(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	os.Args = []string{"cmd", "-a=:8080"}

	t.Setenv("RUN_ADDRESS", ":9090")

	config, err := Read()
	require.NoError(t, err)

	require.Equal(t, ":9090", config.RunAddress)
}

func TestRead_EnvParseError(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	os.Args = []string{"cmd"}

	t.Setenv("KEEPALIVE_INTERVAL", "invalid_duration")

	_, err := Read()
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		StoreURL:          "https://script.example/exec",
		AdminPassword:     "secret",
		KeepAliveInterval: time.Minute,
		KeepAliveFrom:     8,
		KeepAliveTo:       22,
	}
	require.NoError(t, valid.Validate())

	noStore := valid
	noStore.StoreURL = ""
	require.ErrorIs(t, noStore.Validate(), ErrStoreURLRequired)

	noSecret := valid
	noSecret.AdminPassword = ""
	require.ErrorIs(t, noSecret.Validate(), ErrAdminPasswordRequired)

	badHour := valid
	badHour.KeepAliveTo = 24
	require.ErrorIs(t, badHour.Validate(), ErrKeepAliveHour)

	badInterval := valid
	badInterval.KeepAliveInterval = 0
	require.ErrorIs(t, badInterval.Validate(), ErrKeepAliveInterval)
}

func TestConfig_Location(t *testing.T) {
	loc, err := Config{KeepAliveTZ: "Asia/Kolkata"}.Location()
	require.NoError(t, err)
	require.Equal(t, "Asia/Kolkata", loc.String())

	_, err = Config{KeepAliveTZ: "Mars/Olympus"}.Location()
	require.Error(t, err)
}

func TestReadWeb_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	os.Args = []string{"cmd"}

	config, err := ReadWeb()
	require.NoError(t, err)

	require.Equal(t, ":3000", config.RunAddress)
	require.Equal(t, "http://localhost:5000", config.APIAddress)
	require.Equal(t, "", config.SessionKey)
	require.False(t, config.CookieSecure)
	require.ErrorIs(t, config.Validate(), ErrSessionKeyRequired)
}

func TestReadWeb_EnvVars(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	os.Args = []string{"cmd"}

	t.Setenv("WEB_RUN_ADDRESS", ":8081")
	t.Setenv("API_ADDRESS", "http://proxy:5000")
	t.Setenv("SESSION_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("COOKIE_SECURE", "true")

	config, err := ReadWeb()
	require.NoError(t, err)

	require.Equal(t, ":8081", config.RunAddress)
	require.Equal(t, "http://proxy:5000", config.APIAddress)
	require.True(t, config.CookieSecure)
	require.NoError(t, config.Validate())
}
