package main

import (
	"testing"
)

func TestGetModeName(t *testing.T) {
	table := []struct {
		interp, example string
		mode            string
		ok              bool
	}{
		{"interp.ini", "", "Interpolate", true},
		{"", "Interpolate", "ExampleConfig", true},
		{"", "", "", false},
		{"interp.ini", "Interpolate", "", false},
	}

	for i, test := range table {
		interp, example := test.interp, test.example
		vars := map[string]*string{
			"Interpolate":   &interp,
			"ExampleConfig": &example,
		}

		mode, err := getModeName(vars)
		if test.ok != (err == nil) {
			t.Errorf("%d) Expected ok = %v, got error %v.", i+1, test.ok, err)
		} else if mode != test.mode {
			t.Errorf("%d) Expected mode '%s', got '%s'.", i+1, test.mode, mode)
		}
	}
}
