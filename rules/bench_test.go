package rules_test

import (
	"testing"

	"github.com/katalvlaran/choice/profile"
	"github.com/katalvlaran/choice/rules"
)

func benchProfile(b *testing.B) *profile.Profile {
	b.Helper()
	p := profile.New()
	if err := p.GenerateUniform(8, 1000, profile.WithSeed(1)); err != nil {
		b.Fatal(err)
	}
	return p
}

func BenchmarkPlurality(b *testing.B) {
	p := benchProfile(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rules.Plurality(p)
	}
}

func BenchmarkCondorcet(b *testing.B) {
	p := benchProfile(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rules.Condorcet(p)
	}
}

func BenchmarkBordaDowdall(b *testing.B) {
	p := benchProfile(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rules.Borda(p, rules.Dowdall)
	}
}
