// Package mcp renders precomputed answers as static MCP documents: the
// manifest, resource contents and tool call results.
package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrNoTextContent is returned when a tool result carries no text block.
var ErrNoTextContent = errors.New("tool result has no text content")

// EncodeToolResult wraps payload, pretty-printed, in a single text block.
func EncodeToolResult(payload any) ([]byte, error) {
	text, err := encodeJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding tool payload: %w", err)
	}
	return encodeJSON(mcp.NewToolResultText(string(text)))
}

// EncodeResource wraps payload, pretty-printed, as the text contents of uri.
func EncodeResource(uri string, payload any) ([]byte, error) {
	text, err := encodeJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding resource %s: %w", uri, err)
	}
	return encodeJSON(mcp.TextResourceContents{
		URI:      uri,
		MIMEType: MIMEType,
		Text:     string(text),
	})
}

// EncodeManifest renders mcp.json.
func EncodeManifest(m Manifest) ([]byte, error) {
	return encodeJSON(m)
}

// EncodeDocument renders a bare JSON document such as a relation index.
func EncodeDocument(v any) ([]byte, error) {
	return encodeJSON(v)
}

// DecodeToolResult extracts the text payload of a stored tool result.
func DecodeToolResult(data []byte) (string, error) {
	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decoding tool result: %w", err)
	}
	for _, c := range result.Content {
		if c.Type == "text" {
			return c.Text, nil
		}
	}
	return "", ErrNoTextContent
}

// encodeJSON indents with two spaces, leaves <, > and & unescaped and omits
// the trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
