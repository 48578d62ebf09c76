package validators

import "testing"

func TestValidatePhoneNumber(t *testing.T) {
	cases := []struct {
		in   string
		code Code
	}{
		{"(89) 99595-4250", ""},
		{"89995954250", ""},
		{"(21) 3456-7890", ""},
		{"(12) 2456-7890", ""},
		{"(12) 5456-7890", ""},
		{"(11) 9876-543", CodeInvalidLength},
		{"+55 (11) 98765-4321", CodeInvalidLength},
		{"", CodeInvalidLength},
		{"(10) 98765-4321", CodeInvalidAreaCode},
		{"(05) 3456-7890", CodeInvalidAreaCode},
		{"(11) 88765-4321", CodeInvalidMobilePrefix},
		{"(11) 6456-7890", CodeInvalidLandlinePrefix},
		{"(11) 9456-7890", CodeInvalidLandlinePrefix},
		{"(11) 1456-7890", CodeInvalidLandlinePrefix},
	}

	for _, tc := range cases {
		err := ValidatePhoneNumber(tc.in)
		if got := CodeOf(err); got != tc.code {
			t.Fatalf("ValidatePhoneNumber(%q) code=%q, want %q (err=%v)", tc.in, got, tc.code, err)
		}
	}
}

func TestValidatePhoneNumber_AllAreaCodesAndPrefixes(t *testing.T) {
	for ddd := 0; ddd <= 99; ddd++ {
		for prefix := 0; prefix <= 9; prefix++ {
			mobile := pad2(ddd) + string(rune('0'+prefix)) + "12345678"
			landline := pad2(ddd) + string(rune('0'+prefix)) + "1234567"

			validDDD := ddd >= 11
			wantMobile := validDDD && prefix == 9
			wantLandline := validDDD && prefix >= 2 && prefix <= 5

			if got := ValidatePhoneNumber(mobile) == nil; got != wantMobile {
				t.Fatalf("mobile %s accepted=%v, want %v", mobile, got, wantMobile)
			}
			if got := ValidatePhoneNumber(landline) == nil; got != wantLandline {
				t.Fatalf("landline %s accepted=%v, want %v", landline, got, wantLandline)
			}
		}
	}
}

func pad2(n int) string {
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
