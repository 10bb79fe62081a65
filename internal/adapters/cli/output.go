package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Response is the JSON envelope for all --json output.
type Response struct {
	OK    bool       `json:"ok"`
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  *Meta      `json:"meta,omitempty"`
}

// ErrorInfo is the structured form of a failure.
type ErrorInfo struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Hints   []string `json:"hints,omitempty"`
}

// Meta describes a listing.
type Meta struct {
	Count      int    `json:"count"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// printer writes command results in the selected output mode.
type printer struct {
	out    io.Writer
	errOut io.Writer
	json   bool
	styles styles
}

func newPrinter(out, errOut io.Writer, jsonOutput bool) *printer {
	return &printer{
		out:    out,
		errOut: errOut,
		json:   jsonOutput,
		styles: newStyles(isTerminal(out)),
	}
}

// isTerminal reports whether w is a terminal. Only terminals get styled
// text.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) writeJSON(resp Response) {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// Success prints data as the envelope payload in JSON mode, or calls text
// to render it otherwise.
func (p *printer) Success(data any, meta *Meta, text func()) {
	if p.json {
		p.writeJSON(Response{OK: true, Data: data, Meta: meta})
		return
	}
	text()
}

// Error prints err as an envelope in JSON mode, or as code, message, and
// hints on stderr.
func (p *printer) Error(err error) {
	info := describe(err)
	if p.json {
		p.writeJSON(Response{OK: false, Error: &info})
		return
	}

	fmt.Fprintf(p.errOut, "%s %s\n", p.styles.errCode.Render(info.Code+":"), info.Message)
	for _, h := range info.Hints {
		fmt.Fprintf(p.errOut, "  %s %s\n", p.styles.muted.Render("-"), h)
	}
}

// Continue prints how to fetch the next page of a truncated listing.
func (p *printer) Continue(nextCursor string) {
	if nextCursor == "" {
		return
	}
	fmt.Fprintln(p.out, p.styles.muted.Render("more results: --cursor "+nextCursor))
}
