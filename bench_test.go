package gochart

import (
	"fmt"
	"strings"
	"testing"
)

// syntheticChart builds a chart with n notes per difficulty track.
func syntheticChart(n int) string {
	var b strings.Builder
	b.WriteString("[Song]\n{\n  Name = Benchmark\n  Resolution = 192\n}\n")
	b.WriteString("[SyncTrack]\n{\n  0 = TS 4\n  0 = B 120000\n}\n")
	for _, track := range []string{"EasySingle", "MediumSingle", "HardSingle", "ExpertSingle"} {
		fmt.Fprintf(&b, "[%s]\n{\n", track)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "  %d = N %d %d\n", i*48, i%5, (i%4)*24)
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func BenchmarkParse(b *testing.B) {
	source := syntheticChart(1000)
	b.SetBytes(int64(len(source)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(source); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMetadataHeavy(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("[Song]\n{\n")
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&sb, "  Key%d = some value %d\n", i, i)
	}
	sb.WriteString("}\n")
	source := sb.String()

	b.SetBytes(int64(len(source)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(source); err != nil {
			b.Fatal(err)
		}
	}
}
