package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	i18ncatalog "github.com/louisbranch/creational/internal/platform/i18n/catalog"
)

type report struct {
	BaseLocale string         `yaml:"base_locale"`
	Locales    []localeStatus `yaml:"locales"`
}

type localeStatus struct {
	Locale      string            `yaml:"locale"`
	BaseKeys    int               `yaml:"base_keys"`
	Translated  int               `yaml:"translated"`
	Missing     int               `yaml:"missing"`
	Extra       int               `yaml:"extra"`
	Completion  float64           `yaml:"completion"`
	Namespaces  []namespaceStatus `yaml:"namespaces"`
	MissingKeys []string          `yaml:"missing_keys,omitempty"`
	ExtraKeys   []string          `yaml:"extra_keys,omitempty"`
}

type namespaceStatus struct {
	Namespace  string  `yaml:"namespace"`
	BaseKeys   int     `yaml:"base_keys"`
	Translated int     `yaml:"translated"`
	Missing    int     `yaml:"missing"`
	Extra      int     `yaml:"extra"`
	Completion float64 `yaml:"completion"`
}

// complete reports whether every locale translates every base key.
func (r report) complete() bool {
	for _, locale := range r.Locales {
		if locale.Missing > 0 {
			return false
		}
	}
	return true
}

func buildReport(bundle *i18ncatalog.Bundle, baseLocale string) report {
	baseMessages := bundle.LocaleMessages(baseLocale)

	statuses := make([]localeStatus, 0)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		missing := keyDiff(baseMessages, messages)
		translated := len(baseMessages) - len(missing)

		namespaces := unionNamespaces(bundle.Namespaces(baseLocale), bundle.Namespaces(locale))
		nsStatuses := make([]namespaceStatus, 0, len(namespaces))
		for _, namespace := range namespaces {
			baseNS := bundle.NamespaceMessages(baseLocale, namespace)
			localeNS := bundle.NamespaceMessages(locale, namespace)
			nsMissing := keyDiff(baseNS, localeNS)
			nsTranslated := len(baseNS) - len(nsMissing)
			nsStatuses = append(nsStatuses, namespaceStatus{
				Namespace:  namespace,
				BaseKeys:   len(baseNS),
				Translated: nsTranslated,
				Missing:    len(nsMissing),
				Extra:      len(keyDiff(localeNS, baseNS)),
				Completion: percent(nsTranslated, len(baseNS)),
			})
		}

		extra := keyDiff(messages, baseMessages)
		statuses = append(statuses, localeStatus{
			Locale:      locale,
			BaseKeys:    len(baseMessages),
			Translated:  translated,
			Missing:     len(missing),
			Extra:       len(extra),
			Completion:  percent(translated, len(baseMessages)),
			Namespaces:  nsStatuses,
			MissingKeys: missing,
			ExtraKeys:   extra,
		})
	}
	return report{BaseLocale: baseLocale, Locales: statuses}
}

func writeMarkdown(w io.Writer, rep report) error {
	var b strings.Builder
	b.WriteString("# I18n Status\n\n")
	fmt.Fprintf(&b, "Base locale: `%s`.\n\n", rep.BaseLocale)
	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n",
			locale.Locale, locale.BaseKeys, locale.Translated, locale.Missing, locale.Extra, locale.Completion)
	}

	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "\n## `%s`\n\n", locale.Locale)
		b.WriteString("| Namespace | Base Keys | Translated | Missing | Extra | Completion |\n")
		b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
		for _, ns := range locale.Namespaces {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n",
				ns.Namespace, ns.BaseKeys, ns.Translated, ns.Missing, ns.Extra, ns.Completion)
		}
		writeKeyList(&b, "Missing keys", locale.MissingKeys)
		writeKeyList(&b, "Extra keys", locale.ExtraKeys)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeKeyList(b *strings.Builder, title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n\n", title)
	for _, key := range keys {
		fmt.Fprintf(b, "- `%s`\n", key)
	}
}

// keyDiff returns the keys of a that are absent from b, sorted.
func keyDiff(a, b map[string]string) []string {
	out := make([]string, 0)
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func unionNamespaces(a, b []string) []string {
	set := map[string]struct{}{}
	for _, ns := range append(append([]string{}, a...), b...) {
		set[ns] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for ns := range set {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

func percent(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
