package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/reoring/fieldset/codec"
	"github.com/reoring/fieldset/i18n"
	"github.com/reoring/fieldset/manifest"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "fieldset CLI\n\nUsage:\n  fieldset check -rules rules.yaml -in data.json [-lang en|ja]\n\nValidates the JSON payload against the YAML rule manifest and prints the\nreport. Exits 1 when the payload is invalid.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var rulesPath string
	var inPath string
	var lang string
	fs.StringVar(&rulesPath, "rules", "", "path to the YAML rule manifest")
	fs.StringVar(&inPath, "in", "", "path to the JSON payload ('-' for stdin)")
	fs.StringVar(&lang, "lang", "en", "message language")
	_ = fs.Parse(args)
	if rulesPath == "" || inPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	manifestData, err := os.ReadFile(rulesPath)
	if err != nil {
		fatalf("reading manifest: %v", err)
	}
	rs, err := manifest.Load(manifestData)
	if err != nil {
		fatalf("loading manifest: %v", err)
	}

	var payload map[string]any
	if inPath == "-" {
		payload, err = codec.DecodePayloadReader(os.Stdin)
	} else {
		var data []byte
		data, err = os.ReadFile(inPath)
		if err != nil {
			fatalf("reading payload: %v", err)
		}
		payload, err = codec.DecodePayload(data)
	}
	if err != nil {
		fatalf("decoding payload: %v", err)
	}

	report := rs.Validate(payload)
	out, err := codec.EncodeReportIndent(report)
	if err != nil {
		fatalf("encoding report: %v", err)
	}
	fmt.Println(string(out))
	if !report.Valid() {
		os.Exit(1)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
