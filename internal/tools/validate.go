package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// validated wraps next so that arguments failing the tool's input schema
// produce an error result and never reach the handler. The schema is compiled
// once per tool; a schema that does not compile is a programming error.
func validated(tool mcp.Tool, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	sch, err := compileInput(tool)
	if err != nil {
		panic(fmt.Sprintf("tools: compile input schema for %s: %v", tool.Name, err))
	}
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		inst, err := instance(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError("Invalid arguments: " + err.Error()), nil
		}
		if err := sch.Validate(inst); err != nil {
			return mcp.NewToolResultError("Invalid arguments: " + describe(err)), nil
		}
		return next(ctx, req)
	}
}

func compileInput(tool mcp.Tool) (*jsonschema.Schema, error) {
	props := tool.InputSchema.Properties
	if props == nil {
		props = map[string]any{}
	}
	required := tool.InputSchema.Required
	if required == nil {
		required = []string{}
	}
	raw, err := json.Marshal(map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	})
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	url := "mem://tools/" + tool.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
}

// instance converts decoded tool arguments into the form the validator
// expects. Nulls are dropped first so an explicit null for an optional
// property counts as absent and a null required property counts as missing.
func instance(args map[string]any) (any, error) {
	if args == nil {
		args = map[string]any{}
	}
	raw, err := json.Marshal(dropNulls(args))
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}

func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if e != nil {
				out[k] = dropNulls(e)
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = dropNulls(e)
		}
		return out
	}
	return v
}

// describe turns a validation failure into a single message naming the
// offending argument, e.g. "days[0].day_number is required". When several
// arguments fail, the one with the lowest path is reported.
func describe(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	leaves := leafErrors(ve, nil)
	if len(leaves) == 0 {
		return err.Error()
	}
	sort.SliceStable(leaves, func(i, j int) bool {
		return pathOf(leaves[i].InstanceLocation) < pathOf(leaves[j].InstanceLocation)
	})

	first := leaves[0]
	path := pathOf(first.InstanceLocation)
	switch k := first.ErrorKind.(type) {
	case *kind.Required:
		missing := append([]string(nil), k.Missing...)
		sort.Strings(missing)
		return join(path, missing[0]) + " is required"
	case *kind.Type:
		return fmt.Sprintf("%s must be %s", label(path), withArticle(k.Want[0]))
	case *kind.Enum:
		allowed := make([]string, 0, len(k.Want))
		for _, w := range k.Want {
			allowed = append(allowed, fmt.Sprint(w))
		}
		return fmt.Sprintf("%s must be one of: %s", label(path), strings.Join(allowed, ", "))
	}
	return label(path) + ": " + first.ErrorKind.LocalizedString(printer)
}

func leafErrors(ve *jsonschema.ValidationError, out []*jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return append(out, ve)
	}
	for _, c := range ve.Causes {
		out = leafErrors(c, out)
	}
	return out
}

// pathOf renders an instance location as days[0].activities[1].name.
func pathOf(loc []string) string {
	var b strings.Builder
	for _, seg := range loc {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func withArticle(typ string) string {
	switch typ {
	case "integer", "array", "object":
		return "an " + typ
	}
	return "a " + typ
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func label(path string) string {
	if path == "" {
		return "arguments"
	}
	return path
}
