package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

type checkJSON struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

func (r *runner) doctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := r.env.Health.CheckAll(cmd.Context())

			names := make([]string, 0, len(results))
			for name := range results {
				names = append(names, name)
			}
			slices.Sort(names)

			checks := make([]checkJSON, 0, len(names))
			failed := false
			for _, name := range names {
				c := checkJSON{Name: name, Healthy: results[name] == nil}
				if err := results[name]; err != nil {
					c.Error = err.Error()
					failed = true
				}
				checks = append(checks, c)
			}

			if failed && r.opts.JSON {
				// The failing checks are the error details.
				r.printer().writeJSON(Response{
					OK:    false,
					Data:  checks,
					Error: &ErrorInfo{Code: CodeUnhealthy, Message: errUnhealthy.Error()},
				})
				return errSilent
			}

			p := r.printer()
			p.Success(checks, &Meta{Count: len(checks)}, func() {
				for _, c := range checks {
					mark := "ok"
					if !c.Healthy {
						mark = "FAIL"
					}
					line := fmt.Sprintf("%-4s %s", mark, p.styles.bold.Render(c.Name))
					if c.Error != "" {
						line += " " + p.styles.muted.Render(c.Error)
					}
					fmt.Fprintln(p.out, line)
				}
			})
			if failed {
				return errUnhealthy
			}
			return nil
		},
	}
}
