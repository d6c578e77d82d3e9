// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		input    []string
		expected []int
		wantErr  bool
	}{
		{[]string{"10", "20", "30"}, []int{10, 20, 30}, false},
		{[]string{"-5", "0", "+7"}, []int{-5, 0, 7}, false},
		{[]string{}, []int{}, false},
		{[]string{"1", "two"}, nil, true},
		{[]string{"1.5"}, nil, true},
	}

	for _, tc := range tests {
		got, err := parseValues(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseValues(%q) returned no error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseValues(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(got) != len(tc.expected) {
			t.Errorf("parseValues(%q) = %v; want %v", tc.input, got, tc.expected)
			continue
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Errorf("parseValues(%q) = %v; want %v", tc.input, got, tc.expected)
				break
			}
		}
	}
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf, []int{10, 20, 30, 40, 50, 25}, 25); err != nil {
		t.Fatalf("runDemo returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Inserting elements: [10 20 30 40 50 25]",
		"In-order traversal of the AVL tree: [10 20 25 30 40 50]",
		"Searching for 25: ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Not Found") || !strings.Contains(out, "Found") {
		t.Errorf("expected 25 to be found:\n%s", out)
	}
}

func TestRunDemoNotFound(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf, []int{10, 20, 30, 40, 50, 25}, 99); err != nil {
		t.Fatalf("runDemo returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Not Found") {
		t.Errorf("expected 99 to be reported missing:\n%s", buf.String())
	}
}

func TestRunInsertShapeAndCopy(t *testing.T) {
	var copied string
	saved := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { copyToClipboard = saved }()

	var buf bytes.Buffer
	err := runInsert(&buf, []int{10, 20, 30}, insertOptions{Shape: true, Copy: true})
	if err != nil {
		t.Fatalf("runInsert returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "|------+ 20 h=2 bf=+0") {
		t.Errorf("shape missing from output:\n%s", buf.String())
	}
	if !strings.Contains(copied, "|------+ 20 h=2 bf=+0") {
		t.Errorf("clipboard got %q", copied)
	}
	if strings.Contains(buf.String(), "Searching") {
		t.Errorf("searched without a search value:\n%s", buf.String())
	}
}

func TestRunInsertCopyFailure(t *testing.T) {
	saved := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard utility") }
	defer func() { copyToClipboard = saved }()

	var buf bytes.Buffer
	if err := runInsert(&buf, []int{1}, insertOptions{Copy: true}); err == nil {
		t.Errorf("expected the clipboard error to be returned")
	}
}
