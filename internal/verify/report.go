package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Check struct {
	Name   string
	Passed bool
	Detail string
}

type Report struct {
	Checks []Check
}

func (r *Report) add(name string, failures []string, ok string) {
	c := Check{Name: name, Passed: len(failures) == 0, Detail: ok}
	if !c.Passed {
		c.Detail = summarize(failures)
	}
	r.Checks = append(r.Checks, c)
}

func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

func (r *Report) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// Err returns nil when every check passed.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, c := range failed {
		names[i] = c.Name
	}
	return fmt.Errorf("fixture verification failed: %s", strings.Join(names, ", "))
}

func (r *Report) Print(w io.Writer) {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()
	for _, c := range r.Checks {
		if c.Passed {
			fmt.Fprintf(w, "  %s %s: %s\n", pass("✅"), c.Name, c.Detail)
		} else {
			fmt.Fprintf(w, "  %s %s: %s\n", fail("❌"), c.Name, c.Detail)
		}
	}
}

const maxSamples = 3

func summarize(failures []string) string {
	if len(failures) <= maxSamples {
		return strings.Join(failures, "; ")
	}
	return fmt.Sprintf("%s; and %d more", strings.Join(failures[:maxSamples], "; "), len(failures)-maxSamples)
}
