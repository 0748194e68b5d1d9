package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/neusy/urwerk-client/internal/constants"
	"github.com/neusy/urwerk-client/internal/logging"
	"github.com/neusy/urwerk-client/pkg/urwerk"
	"github.com/neusy/urwerk-client/pkg/urwerkclient"
)

// JSON formatting.
const defaultJSONIndent = 2

// OutputRenderer handles different output formats.
type OutputRenderer[T any] struct {
	RenderTable func(out io.Writer, data T) error
}

// Render outputs data in the format selected by --output.
func (o *OutputRenderer[T]) Render(out io.Writer, data T) error {
	switch format := viper.GetString("output"); format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return encoder.Close()
	case "", constants.FormatTable:
		return o.RenderTable(out, data)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, format)
	}
}

// render is OutputRenderer.Render for a one-off table function.
func render[T any](cmd *cobra.Command, data T, table func(out io.Writer, data T) error) error {
	renderer := &OutputRenderer[T]{RenderTable: table}

	return renderer.Render(cmd.OutOrStdout(), data)
}

var titleCaser = cases.Title(language.English)

// newTable creates a table with title-cased headers, "model_key" becoming
// "Model Key".
func newTable(out io.Writer, headers ...string) *tablewriter.Table {
	titled := make([]any, 0, len(headers))
	for _, header := range headers {
		titled = append(titled, titleCaser.String(strings.ReplaceAll(header, "_", " ")))
	}

	table := tablewriter.NewWriter(out)
	table.Header(titled...)

	return table
}

func renderTable(table *tablewriter.Table) error {
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// formatValue renders scalars with %v and everything else as compact JSON.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}

		return string(data)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys(object urwerk.Object) []string {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// objectTable renders one object as property/value rows.
func objectTable(out io.Writer, object urwerk.Object) error {
	table := newTable(out, "property", "value")

	for _, key := range sortedKeys(object) {
		_ = table.Append([]string{key, formatValue(object[key])})
	}

	return renderTable(table)
}

// listTable renders objects with the given leading columns. Remaining keys
// are folded into a trailing "other" column.
func listTable(out io.Writer, objects []urwerk.Object, columns ...string) error {
	table := newTable(out, append(append([]string{}, columns...), "other")...)

	known := make(map[string]bool, len(columns))
	for _, column := range columns {
		known[column] = true
	}

	for _, object := range objects {
		row := make([]string, 0, len(columns)+1)
		for _, column := range columns {
			row = append(row, formatValue(object[column]))
		}

		other := urwerk.Object{}

		for key, value := range object {
			if !known[key] {
				other[key] = value
			}
		}

		if len(other) > 0 {
			row = append(row, formatValue(map[string]any(other)))
		} else {
			row = append(row, "")
		}

		_ = table.Append(row)
	}

	return renderTable(table)
}

// anyTable renders an untyped payload: objects as rows, lists of objects as
// a list table, anything else as a single value.
func anyTable(columns ...string) func(out io.Writer, data any) error {
	return func(out io.Writer, data any) error {
		switch v := data.(type) {
		case map[string]any:
			return objectTable(out, v)
		case []any:
			if objects, ok := asObjects(v); ok {
				return listTable(out, objects, columns...)
			}
		}

		_, err := fmt.Fprintln(out, formatValue(data))

		return err
	}
}

func asObjects(items []any) ([]urwerk.Object, bool) {
	objects := make([]urwerk.Object, 0, len(items))

	for _, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}

		objects = append(objects, object)
	}

	return objects, true
}

// printMessage writes a status line in table mode and a small result object
// otherwise.
func printMessage(cmd *cobra.Command, action, detail string) error {
	result := map[string]string{"action": action}
	if detail != "" {
		result["detail"] = detail
	}

	return render(cmd, result, func(out io.Writer, _ map[string]string) error {
		if detail == "" {
			_, err := fmt.Fprintln(out, action)

			return err
		}

		_, err := fmt.Fprintf(out, "%s: %s\n", action, detail)

		return err
	})
}

// newClientConfig builds the client configuration from flags, environment
// and config file.
func newClientConfig() (*urwerk.Config, error) {
	apiURL := viper.GetString("api")
	if apiURL == "" {
		return nil, constants.ErrNoAPIConfigured
	}

	level := viper.GetString("log_level")
	if level == "" && viper.GetBool("verbose") {
		level = "debug"
	}

	logger, err := logging.New(level)
	if err != nil {
		return nil, err
	}

	return &urwerk.Config{
		APIURL:    apiURL,
		UserAgent: viper.GetString("user_agent"),
		Debug:     viper.GetBool("verbose") || level == "debug",
		Logger:    logging.NewAdapter(logger),
	}, nil
}

// createColorsensor builds a colorsensor client for the configured device.
func createColorsensor() (urwerk.Colorsensor, error) {
	config, err := newClientConfig()
	if err != nil {
		return nil, err
	}

	return urwerkclient.NewColorsensor(config)
}

// objectListTable is listTable bound to columns.
func objectListTable(columns ...string) func(out io.Writer, objects []urwerk.Object) error {
	return func(out io.Writer, objects []urwerk.Object) error {
		return listTable(out, objects, columns...)
	}
}
