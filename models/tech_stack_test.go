package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTechStackRoundTrip(t *testing.T) {
	stack := TechStack{"React", "Node.js"}

	joined := stack.Joined()
	if joined != "React, Node.js" {
		t.Fatalf("Joined = %q, want %q", joined, "React, Node.js")
	}

	got := ParseTechStack(joined)
	if !reflect.DeepEqual(got, stack) {
		t.Errorf("ParseTechStack(%q) = %v, want %v", joined, got, stack)
	}
}

func TestParseTechStackDropsEmptyTokens(t *testing.T) {
	got := ParseTechStack("  Go , ,Postgres,, htmx ")
	want := TechStack{"Go", "Postgres", "htmx"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTechStack = %v, want %v", got, want)
	}

	if got := ParseTechStack(""); len(got) != 0 || got == nil {
		t.Errorf("ParseTechStack(\"\") = %#v, want empty non-nil", got)
	}
}

func TestTechStackUnmarshalAcceptsBothShapes(t *testing.T) {
	cases := map[string]TechStack{
		`["React", " Node.js ", ""]`: {"React", "Node.js"},
		`"React, Node.js"`:           {"React", "Node.js"},
		`null`:                       {},
	}
	for input, want := range cases {
		var got TechStack
		if err := json.Unmarshal([]byte(input), &got); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", input, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Unmarshal(%s) = %v, want %v", input, got, want)
		}
	}

	var bad TechStack
	if err := json.Unmarshal([]byte(`42`), &bad); err == nil {
		t.Error("expected error for a numeric tech_stack")
	}
}

func TestTechStackMarshalNeverNull(t *testing.T) {
	var empty TechStack
	data, err := json.Marshal(struct {
		Stack TechStack `json:"tech_stack"`
	}{empty})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"tech_stack":[]}` {
		t.Errorf("Marshal = %s, want empty list", data)
	}
}

func TestTechStackScan(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  TechStack
	}{
		{"json bytes", []byte(`["Go","chi"]`), TechStack{"Go", "chi"}},
		{"json string", `["Go"]`, TechStack{"Go"}},
		{"array literal", `{Go,"Next.js",NULL}`, TechStack{"Go", "Next.js"}},
		{"delimited", "Go, chi", TechStack{"Go", "chi"}},
		{"nil", nil, TechStack{}},
	}
	for _, tc := range cases {
		var got TechStack
		if err := got.Scan(tc.value); err != nil {
			t.Fatalf("%s: Scan failed: %v", tc.name, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: Scan = %v, want %v", tc.name, got, tc.want)
		}
	}

	var got TechStack
	if err := got.Scan(12); err == nil {
		t.Error("expected error scanning an int")
	}
}

func TestTechStackValueIsJSONArray(t *testing.T) {
	v, err := TechStack{"Go", "gorm"}.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	var s string
	switch raw := v.(type) {
	case []byte:
		s = string(raw)
	case string:
		s = raw
	default:
		t.Fatalf("Value returned %T", v)
	}
	if s != `["Go","gorm"]` {
		t.Errorf("Value = %s, want JSON array", s)
	}
}

func TestTechStackFrom(t *testing.T) {
	got, err := TechStackFrom([]any{"Go", " templ "})
	if err != nil {
		t.Fatalf("TechStackFrom failed: %v", err)
	}
	if !reflect.DeepEqual(got, TechStack{"Go", "templ"}) {
		t.Errorf("TechStackFrom = %v", got)
	}
	if _, err := TechStackFrom([]any{"Go", 3}); err == nil {
		t.Error("expected error for a non-string element")
	}
	if _, err := TechStackFrom(true); err == nil {
		t.Error("expected error for a bool")
	}
}

func TestCoerceDisplayOrder(t *testing.T) {
	cases := []struct {
		in   any
		want any
	}{
		{float64(3), 3},
		{"2", 2},
		{"", nil},
		{nil, nil},
	}
	for _, tc := range cases {
		got, err := CoerceDisplayOrder(tc.in)
		if err != nil {
			t.Fatalf("CoerceDisplayOrder(%v) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("CoerceDisplayOrder(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := CoerceDisplayOrder(1.5); err == nil {
		t.Error("expected error for a fractional order")
	}
	if _, err := CoerceDisplayOrder("first"); err == nil {
		t.Error("expected error for a non-numeric order")
	}
}
