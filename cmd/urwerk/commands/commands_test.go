package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/neusy/urwerk-client/internal/constants"
	"github.com/neusy/urwerk-client/internal/discovery"
)

// These tests share the global viper instance and do not run in parallel.

type deviceRequest struct {
	method string
	path   string
	query  string
	body   string
}

// fakeDevice serves canned JSON bodies keyed by "METHOD /path".
type fakeDevice struct {
	mu       sync.Mutex
	requests []deviceRequest
	server   *httptest.Server
}

func newFakeDevice(t *testing.T, routes map[string]string) *fakeDevice {
	t.Helper()

	device := &fakeDevice{}
	device.server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)

		device.mu.Lock()
		device.requests = append(device.requests, deviceRequest{
			method: request.Method,
			path:   request.URL.Path,
			query:  request.URL.RawQuery,
			body:   string(body),
		})
		device.mu.Unlock()

		response, ok := routes[request.Method+" "+request.URL.Path]
		if !ok {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(writer, `{"errors": ["not found"]}`)

			return
		}

		if strings.HasPrefix(response, "{") || strings.HasPrefix(response, "[") {
			writer.Header().Set("Content-Type", "application/json")
		} else {
			writer.Header().Set("Content-Type", "text/plain")
		}

		_, _ = io.WriteString(writer, response)
	}))
	t.Cleanup(device.server.Close)

	resetViper(t)
	viper.Set("api", device.server.URL+"/api/v1")

	return device
}

func (d *fakeDevice) last() deviceRequest {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.requests[len(d.requests)-1]
}

func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func subcommandNames(cmd *cobra.Command) []string {
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	return names
}

func TestCommandTree(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		use  string
		subs []string
	}{
		{cmd: NewConfigCommand(), use: "config", subs: []string{"set", "show"}},
		{cmd: NewSystemCommand(), use: "system", subs: []string{"get", "hostname", "reboot"}},
		{cmd: NewNetworkCommand(), use: "network", subs: []string{"interfaces"}},
		{cmd: NewSamplesCommand(), use: "samples", subs: []string{"current", "stream"}},
		{cmd: NewProfilesCommand(), use: "profiles", subs: []string{"current", "list"}},
		{cmd: NewDetectablesCommand(), use: "detectables", subs: []string{"list"}},
		{cmd: NewSettingsCommand(), use: "settings", subs: []string{"dump"}},
		{cmd: NewMaintenanceCommand(), use: "maintenance", subs: []string{"constants"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.use, tt.cmd.Use)
		assert.ElementsMatch(t, tt.subs, subcommandNames(tt.cmd), tt.use)
	}

	stream, _, err := NewSamplesCommand().Find([]string{"stream"})
	require.NoError(t, err)

	for _, flag := range []string{"count", "format", "delimiter", "nats-url", "subject"} {
		assert.NotNil(t, stream.Flags().Lookup(flag), "flag %s", flag)
	}

	discover := NewDiscoverCommand()
	for _, flag := range []string{"timeout", "service", "prefix", "api-path"} {
		assert.NotNil(t, discover.Flags().Lookup(flag), "flag %s", flag)
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	resetViper(t)
	viper.Set("output", constants.FormatJSON)

	out, err := runCommand(t, NewVersionCommand())
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info.Version)
	assert.True(t, strings.HasPrefix(info.UserAgent, "urwerk-api-client/"))
}

func TestVersionCommand_UnsupportedOutput(t *testing.T) {
	resetViper(t)
	viper.Set("output", "xml")

	_, err := runCommand(t, NewVersionCommand())
	require.ErrorIs(t, err, constants.ErrUnsupportedOutput)
}

func TestCommands_RequireAPI(t *testing.T) {
	resetViper(t)

	_, err := runCommand(t, NewInfoCommand())
	require.ErrorIs(t, err, constants.ErrNoAPIConfigured)
}

func TestInfoCommand(t *testing.T) {
	newFakeDevice(t, map[string]string{
		"GET /api/v1/device":          `{"device_id": "CS-0042", "model_key": "cs1", "model": "Colorsensor", "vendor": "urwerk"}`,
		"GET /api/v1/firmware/status": `{"version": "2.4.0", "build_id": "b-77", "source_url": "http://releases/b-77"}`,
	})

	out, err := runCommand(t, NewInfoCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "CS-0042")
	assert.Contains(t, out, "Colorsensor")
	assert.Contains(t, out, "2.4.0")
	assert.NotContains(t, out, "Variant")

	viper.Set("output", constants.FormatYAML)

	out, err = runCommand(t, NewInfoCommand())
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "b-77", summary["firmware"].(map[string]any)["build_id"])
}

func TestSystemHostnameCommand(t *testing.T) {
	device := newFakeDevice(t, map[string]string{
		"GET /api/v1/system": `{"hostname": "urwerk-42", "location": "line 3"}`,
		"PUT /api/v1/system": `{"hostname": "urwerk-43"}`,
	})

	out, err := runCommand(t, NewSystemCommand(), "hostname")
	require.NoError(t, err)
	assert.Equal(t, "Hostname: urwerk-42\n", out)

	_, err = runCommand(t, NewSystemCommand(), "hostname", "urwerk-43")
	require.NoError(t, err)

	last := device.last()
	assert.Equal(t, http.MethodPut, last.method)
	assert.JSONEq(t, `{"hostname": "urwerk-43"}`, last.body)

	out, err = runCommand(t, NewSystemCommand(), "get")
	require.NoError(t, err)
	assert.Contains(t, out, "line 3")
}

func TestSystemRebootCommand(t *testing.T) {
	device := newFakeDevice(t, map[string]string{
		"POST /api/v1/system/reboot": `{"data": {}}`,
	})

	out, err := runCommand(t, NewSystemCommand(), "reboot")
	require.NoError(t, err)
	assert.Contains(t, out, "Reboot requested")
	assert.Equal(t, "/api/v1/system/reboot", device.last().path)
}

func TestNetworkInterfacesCommand(t *testing.T) {
	newFakeDevice(t, map[string]string{
		"GET /api/v1/network/interfaces": `{"network_interfaces": [{"iface": "eth1", "mac": "b"}, {"iface": "eth0", "mac": "a"}]}`,
	})

	viper.Set("output", constants.FormatJSON)

	out, err := runCommand(t, NewNetworkCommand(), "interfaces")
	require.NoError(t, err)

	var interfaces []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &interfaces))
	require.Len(t, interfaces, 2)
	assert.Equal(t, "eth0", interfaces[0]["iface"])
	assert.Equal(t, "eth1", interfaces[1]["iface"])
}

func TestSamplesStreamCommand(t *testing.T) {
	device := newFakeDevice(t, map[string]string{
		"GET /api/v1/sensor/samples": "{\"lab\": [1, 2, 3]}\n\n{\"lab\": [4, 5, 6]}\n",
	})

	out, err := runCommand(t, NewSamplesCommand(), "stream", "--count", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"lab": [1, 2, 3]}`, lines[0])
	assert.JSONEq(t, `{"lab": [4, 5, 6]}`, lines[1])

	last := device.last()
	assert.Contains(t, last.query, "stream=1")
	assert.Contains(t, last.query, "stream_count=2")
}

func TestSamplesCurrentCommand(t *testing.T) {
	newFakeDevice(t, map[string]string{
		"GET /api/v1/sensor/samples/current": `{"lab": [50.5, 1.2, -3]}`,
	})

	out, err := runCommand(t, NewSamplesCommand(), "current")
	require.NoError(t, err)
	assert.Contains(t, out, "[50.5,1.2,-3]")
}

func TestDetectablesListCommand(t *testing.T) {
	device := newFakeDevice(t, map[string]string{
		"GET /api/v1/sensor/detectables": `{"detectables": [{"uuid": "b", "name": "blue"}, {"uuid": "a", "name": "red"}]}`,
	})

	out, err := runCommand(t, NewDetectablesCommand(), "list", "--profile", "p-1")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "red"), strings.Index(out, "blue"))
	assert.Equal(t, "profile_id=p-1", device.last().query)
}

func TestProfilesCurrentCommand(t *testing.T) {
	newFakeDevice(t, map[string]string{
		"GET /api/v1/sensor/detection-profiles/current": `{"uuid": "p-1", "name": "default"}`,
	})

	out, err := runCommand(t, NewProfilesCommand(), "current")
	require.NoError(t, err)
	assert.Contains(t, out, "p-1")
	assert.Contains(t, out, "default")
}

func TestSettingsDumpCommand(t *testing.T) {
	newFakeDevice(t, map[string]string{
		"GET /api/v1/settings": "hostname=urwerk-42",
	})

	out, err := runCommand(t, NewSettingsCommand(), "dump")
	require.NoError(t, err)
	assert.Equal(t, "hostname=urwerk-42\n", out)
}

func TestMaintenanceConstantsCommand(t *testing.T) {
	routes := map[string]string{
		"GET /api/v1/maintenance/constants/calibration-samples": `{"values": [1, 2]}`,
		"GET /api/v1/maintenance/constants/normalization":       `{"values": [0.5, 1, 1.5]}`,
	}

	newFakeDevice(t, routes)
	viper.Set("output", constants.FormatJSON)

	out, err := runCommand(t, NewMaintenanceCommand(), "constants", "--secret", "hunter2")
	require.NoError(t, err)

	var result MaintenanceConstants
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []float64{1, 2}, result.Calibration)
	assert.Equal(t, []float64{0.5, 1, 1.5}, result.Normalization)
}

func TestMaintenanceConstantsCommand_Prompt(t *testing.T) {
	newFakeDevice(t, map[string]string{
		"GET /api/v1/maintenance/constants/calibration-samples": `{"values": []}`,
		"GET /api/v1/maintenance/constants/normalization":       `{"values": [1, 1, 1]}`,
	})

	original := readSecret
	t.Cleanup(func() { readSecret = original })

	prompted := false
	readSecret = func(io.Writer) (string, error) {
		prompted = true

		return "hunter2", nil
	}

	_, err := runCommand(t, NewMaintenanceCommand(), "constants")
	require.NoError(t, err)
	assert.True(t, prompted)

	readSecret = func(io.Writer) (string, error) { return "  ", nil }

	_, err = runCommand(t, NewMaintenanceCommand(), "constants")
	require.ErrorIs(t, err, constants.ErrSecretRequired)
}

func TestConfigSetAndShow(t *testing.T) {
	resetViper(t)

	configFile := filepath.Join(t.TempDir(), "urwerk", "config.yml")
	viper.SetConfigFile(configFile)

	_, err := runCommand(t, NewConfigCommand(), "set", "api", "http://10.0.0.5/api/v1")
	require.NoError(t, err)

	_, err = runCommand(t, NewConfigCommand(), "set", "output", "yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, "http://10.0.0.5/api/v1", saved.API)
	assert.Equal(t, "yaml", saved.Output)

	out, err := runCommand(t, NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "api: http://10.0.0.5/api/v1")

	_, err = runCommand(t, NewConfigCommand(), "set", "colour", "red")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	_, err = runCommand(t, NewConfigCommand(), "set", "output", "xml")
	require.ErrorIs(t, err, constants.ErrUnsupportedOutput)
}

func TestToDiscovered(t *testing.T) {
	devices := []*discovery.Device{
		{Hostname: "urwerk-1.local.", IP: "10.0.0.5", Port: 80, Metadata: map[string]string{}},
		{Hostname: "urwerk-2.local.", IP: "10.0.0.6", Port: 8080, Metadata: map[string]string{"path": "/api/v2"}},
	}

	rows := toDiscovered(devices, "")
	require.Len(t, rows, 2)
	assert.Equal(t, "http://10.0.0.5:80/api/v1", rows[0].RootURL)
	assert.Equal(t, "http://10.0.0.6:8080/api/v2", rows[1].RootURL)

	rows = toDiscovered(devices, "custom")
	assert.Equal(t, "http://10.0.0.5:80/custom", rows[0].RootURL)

	var out bytes.Buffer
	require.NoError(t, displayDiscoveredTable(&out, nil))
	assert.Equal(t, "No devices found\n", out.String())
}

func TestFormatValue(t *testing.T) {
	assert.Empty(t, formatValue(nil))
	assert.Equal(t, "eth0", formatValue("eth0"))
	assert.Equal(t, "3.5", formatValue(3.5))
	assert.Equal(t, `{"a":[1,true]}`, formatValue(map[string]any{"a": []any{1, true}}))
}

func TestNewTable_TitlesHeaders(t *testing.T) {
	var out bytes.Buffer

	table := newTable(&out, "model_key", "root_url")
	_ = table.Append([]string{"cs1", "http://dev"})
	require.NoError(t, renderTable(table))

	assert.Contains(t, strings.ToUpper(out.String()), "MODEL KEY")
	assert.Contains(t, out.String(), "cs1")
}
