package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	saved := Version
	defer func() { Version = saved }()
	Version = "v1.2.3"

	if s := String(); !strings.Contains(s, "version: v1.2.3") {
		t.Errorf("String() = %q", s)
	}
	if tmpl := Template(); !strings.Contains(tmpl, "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", tmpl)
	}
}
