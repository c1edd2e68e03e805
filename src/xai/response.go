package xai

import "strings"

// NoResponse is printed when a response carries no text
const NoResponse = "(no response)"

// Response is the subset of a Responses API reply the CLI reads
type Response struct {
	ID     string       `json:"id"`
	Model  string       `json:"model"`
	Status string       `json:"status"`
	Output []OutputItem `json:"output"`
}

// OutputItem is one entry of Response.Output.
// An item carries either Text directly or a list of Content blocks.
type OutputItem struct {
	Type    string         `json:"type"`
	Text    *string        `json:"text,omitempty"`
	Content []ContentBlock `json:"content,omitempty"`
}

// ContentBlock is a nested block of an OutputItem
type ContentBlock struct {
	Type string  `json:"type"`
	Text *string `json:"text,omitempty"`
}

// ExtractText joins the text of every output item with newlines.
// Items exposing text directly win over their content blocks; items with
// neither are skipped.
func ExtractText(resp *Response) string {
	if resp == nil {
		return NoResponse
	}

	var texts []string
	for _, item := range resp.Output {
		if item.Text != nil {
			texts = append(texts, *item.Text)
			continue
		}
		for _, block := range item.Content {
			if block.Text != nil {
				texts = append(texts, *block.Text)
			}
		}
	}

	if len(texts) == 0 {
		return NoResponse
	}
	return strings.Join(texts, "\n")
}
