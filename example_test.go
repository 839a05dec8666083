package legalsite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-legalsite"
)

// Example renders the English privacy policy of a small source directory.
func Example() {
	src, err := os.MkdirTemp("", "legal-src")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(src)
	out := filepath.Join(src, "public")

	md := "# Privacy Policy\n\nWe collect **nothing**.\n"
	if err := os.WriteFile(filepath.Join(src, "privacy_policy_en.md"), []byte(md), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	langs, err := legalsite.NewLanguages(legalsite.Language{Code: "en", Name: "English"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	gen, err := legalsite.NewGenerator(src, out, legalsite.WithLanguages(langs))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	report, err := gen.Generate(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, res := range report.Results {
		fmt.Println(filepath.Base(res.OutputPath), res.Status)
	}
	// Output:
	// privacy_en.html generated
	// terms_en.html skipped
}

// ExampleDecoderChain shows the fallback to windows-1252 for legacy files.
func ExampleDecoderChain() {
	chain := legalsite.DefaultDecoderChain()

	text, enc, err := chain.Decode([]byte("Caf\xe9"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(text, enc)
	// Output: Café windows-1252
}
