package middleware

import "testing"

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"  trimmed  ", "trimmed"},
		{"<script>alert('x')</script>", "&lt;script&gt;alert(&#x27;x&#x27;)&lt;/script&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
	}
	for _, c := range cases {
		if got := SanitizeInput(c.in); got != c.want {
			t.Errorf("SanitizeInput(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	if ok, _ := ValidatePasswordStrength("abc123"); !ok {
		t.Error("6 character password should pass")
	}
	if ok, errs := ValidatePasswordStrength("short"); ok || len(errs) == 0 {
		t.Error("5 character password should fail")
	}

	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}
	if ok, _ := ValidatePasswordStrength(string(long)); ok {
		t.Error("129 character password should fail")
	}
}
