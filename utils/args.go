package utils

import (
	"strconv"
)

// ApplyArgs overrides rows, cols and max iterations from positional
// arguments (program name excluded). An argument that is not a number
// leaves the setting alone and is reported back in ignored.
func (c *Config) ApplyArgs(args []string) (ignored []string) {
	targets := []*int{&c.Rows, &c.Cols, &c.MaxIterations}
	for i, arg := range args {
		if i >= len(targets) {
			ignored = append(ignored, arg)
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			ignored = append(ignored, arg)
			continue
		}
		*targets[i] = n
	}
	return ignored
}
