// Package main reports translation coverage of the embedded locale catalogs.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/creational/internal/platform/config"
	i18ncatalog "github.com/louisbranch/creational/internal/platform/i18n/catalog"
)

func main() {
	var baseLocale string
	var format string
	var strict bool

	flag.StringVar(&baseLocale, "base-locale", i18ncatalog.BaseLocale, "base locale used as translation source of truth")
	flag.StringVar(&format, "format", "markdown", "output format: markdown or yaml")
	flag.BoolVar(&strict, "strict", false, "exit 1 when any locale is missing keys")
	flag.Parse()

	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		config.Exitf("load i18n catalogs: %v", err)
	}
	if !bundle.HasLocale(baseLocale) {
		config.Exitf("base locale %q is missing from catalogs", baseLocale)
	}

	rep := buildReport(bundle, baseLocale)
	switch format {
	case "markdown":
		err = writeMarkdown(os.Stdout, rep)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err = enc.Encode(rep); err == nil {
			err = enc.Close()
		}
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		config.Exitf("write report: %v", err)
	}
	if strict && !rep.complete() {
		config.Exitf("translations incomplete")
	}
}
