package i18n

import "testing"

// TestIsSupported tests the supported language check.
func TestIsSupported(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		lang     string
		expected bool
	}{
		{"en", true},
		{"tr", true},
		{"de", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.lang, func(t *testing.T) {
			t.Parallel()
			if got := IsSupported(tc.lang); got != tc.expected {
				t.Errorf("IsSupported(%q) = %v, expected %v", tc.lang, got, tc.expected)
			}
		})
	}
}

// TestLocalizerLabel tests label lookup and fallback behavior.
func TestLocalizerLabel(t *testing.T) {
	t.Parallel()

	t.Run("english label", func(t *testing.T) {
		t.Parallel()
		loc := NewLocalizer("en")
		if got := loc.Label("report.title"); got != "Rental Market Summary" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("turkish label", func(t *testing.T) {
		t.Parallel()
		loc := NewLocalizer("tr")
		if got := loc.Label("report.title"); got != "Kira Piyasası Özeti" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("unsupported language falls back to english", func(t *testing.T) {
		t.Parallel()
		loc := NewLocalizer("de")
		if loc.Language() != "en" {
			t.Errorf("expected fallback language en, got %q", loc.Language())
		}
		if got := loc.Label("report.count"); got != "Listings analyzed" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		t.Parallel()
		loc := NewLocalizer("en")
		if got := loc.Label("report.nonexistent"); got != "report.nonexistent" {
			t.Errorf("got %q", got)
		}
	})
}

// TestLocalizerFormatting tests locale-aware number rendering.
// Exact output is asserted for English only; other locales use different
// grouping separators, which x/text handles for us.
func TestLocalizerFormatting(t *testing.T) {
	t.Parallel()

	loc := NewLocalizer("en")

	t.Run("money with grouping", func(t *testing.T) {
		t.Parallel()
		if got := loc.Money(2950); got != "$2,950" {
			t.Errorf("got %q, expected %q", got, "$2,950")
		}
	})

	t.Run("precise money", func(t *testing.T) {
		t.Parallel()
		if got := loc.MoneyPrecise(6.547); got != "$6.55" {
			t.Errorf("got %q, expected %q", got, "$6.55")
		}
	})

	t.Run("count with grouping", func(t *testing.T) {
		t.Parallel()
		if got := loc.Count(12345); got != "12,345" {
			t.Errorf("got %q, expected %q", got, "12,345")
		}
	})

	t.Run("percent", func(t *testing.T) {
		t.Parallel()
		if got := loc.Percent(0.45); got != "45%" {
			t.Errorf("got %q, expected %q", got, "45%")
		}
	})
}

// TestEveryKeyHasAllLanguages verifies catalog completeness so a missing
// translation is caught at test time, not in production output.
func TestEveryKeyHasAllLanguages(t *testing.T) {
	t.Parallel()

	for key, langMap := range labels {
		for _, lang := range SupportedLanguages {
			if _, ok := langMap[lang]; !ok {
				t.Errorf("label %q is missing language %q", key, lang)
			}
		}
	}
}
