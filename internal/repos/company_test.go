package repos

import (
	"testing"
)

func TestUpdateSetStripsCompanyName(t *testing.T) {
	set := updateSet(map[string]interface{}{
		"companyName": "Y",
		"foo":         "bar",
	})
	if len(set) != 1 {
		t.Fatalf("updateSet produced %d entries, want 1: %v", len(set), set)
	}
	if set["info.foo"] != "bar" {
		t.Fatalf("updateSet missing info.foo entry: %v", set)
	}
	for k := range set {
		if k == "companyName" || k == "info.companyName" {
			t.Fatalf("updateSet leaked the key field: %v", set)
		}
	}
}

func TestUpdateSetEmptyPayload(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]interface{}
	}{
		{name: "nil_fields", fields: nil},
		{name: "only_company_name", fields: map[string]interface{}{"companyName": "Y"}},
		{name: "empty_fields", fields: map[string]interface{}{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if set := updateSet(tc.fields); len(set) != 0 {
				t.Fatalf("updateSet(%v) = %v, want empty", tc.fields, set)
			}
		})
	}
}
