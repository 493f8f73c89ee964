package cmd

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
	"github.com/msto63/zonetime/pkg/zonetime"
)

// render writes data as JSON or YAML, or calls text for the text format
func render(cmd *cobra.Command, data any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()

	switch strings.ToLower(outputFormat) {
	case "", "text":
		return text(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	}

	return mdwerror.Newf("unknown output format %q", outputFormat).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("cmd.render")
}

// valueAt reads args[i] as a date string, or returns now when it is absent
func valueAt(args []string, i int, d zonetime.Descriptor) *zonetime.Value {
	if i < len(args) && strings.TrimSpace(args[i]) != "" {
		return app.factory.FromString(args[i], d)
	}
	return app.factory.Now(d)
}
