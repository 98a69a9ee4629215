package confedit

import (
	"strings"
	"testing"
)

const benchFixture = "[user]\n\tname = Bench User\n\temail = bench@example.com\n[core]\n\teditor = vim\n[remote \"origin\"]\n\turl = https://example.org/repo.git\n"

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		if _, err := Parse(strings.NewReader(benchFixture)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFind(b *testing.B) {
	doc, err := Parse(strings.NewReader(benchFixture))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		seq, err := doc.Find("remote", "origin", "url", "")
		if err != nil {
			b.Fatal(err)
		}
		for range seq {
		}
	}
}

func BenchmarkSet(b *testing.B) {
	doc, err := Parse(strings.NewReader(benchFixture))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if err := doc.Set("core", "", "editor", "nano"); err != nil {
			b.Fatal(err)
		}
	}
}
