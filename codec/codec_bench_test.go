package codec

import (
	"testing"
)

type benchInput struct {
	Name   string `json:"name"`
	Tokens int    `json:"tokens"`
	New    int    `json:"new"`
}

type benchReport struct {
	Split    string       `json:"split"`
	Entries  int          `json:"entries"`
	Size     int          `json:"size"`
	Ratio    float64      `json:"ratio"`
	Checksum uint32       `json:"checksum"`
	Inputs   []benchInput `json:"inputs"`
	Unique   []string     `json:"unique"`
}

func newBenchReport() benchReport {
	r := benchReport{
		Split:    "words",
		Entries:  512,
		Size:     4096,
		Ratio:    0.8125,
		Checksum: 0xe3069283,
	}
	for i := range 16 {
		r.Inputs = append(r.Inputs, benchInput{Name: "input.txt", Tokens: 100 + i, New: i})
	}
	for range 128 {
		r.Unique = append(r.Unique, "token")
	}
	return r
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func BenchmarkCodec_Marshal_Report(b *testing.B) {
	report := newBenchReport()

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, report) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, report) })
}

func BenchmarkCodec_Unmarshal_Report(b *testing.B) {
	data := MustMarshal(JSON{}, newBenchReport())

	b.Run("stdlib", func(b *testing.B) {
		var sink benchReport
		benchmarkCodecUnmarshal(b, JSON{}, data, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink benchReport
		benchmarkCodecUnmarshal(b, GoJSON{}, data, &sink)
		_ = sink
	})
}
