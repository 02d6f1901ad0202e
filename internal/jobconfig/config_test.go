package jobconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
meta:
  name: polygon-weekly
  graphs_dir: out/graphs
  clean_input: false
reports:
  - kind: single
    file: data/weth-usdc.csv
    target_ratio: 1.002
  - kind: sub1
    buy_file: data/buy.csv
    sell_file: /abs/sell.csv
    buy_ratio: 1.001
    sell_ratio: 1.003
`

func writeJobs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeJobs(t, sampleYAML)
	base := filepath.Dir(path)

	cfg, raw, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sampleYAML, string(raw))

	assert.Equal(t, "polygon-weekly", cfg.Meta.Name)
	assert.Equal(t, filepath.Join(base, "out/graphs"), cfg.Meta.GraphsDir)
	assert.False(t, cfg.Meta.CleanInputOr(true))

	require.Len(t, cfg.Reports, 2)
	assert.Equal(t, KindSingle, cfg.Reports[0].Kind)
	assert.Equal(t, filepath.Join(base, "data/weth-usdc.csv"), cfg.Reports[0].File)
	assert.Equal(t, 1.002, cfg.Reports[0].TargetRatio)

	assert.Equal(t, KindSub1, cfg.Reports[1].Kind)
	assert.Equal(t, filepath.Join(base, "data/buy.csv"), cfg.Reports[1].BuyFile)
	assert.Equal(t, "/abs/sell.csv", cfg.Reports[1].SellFile)
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeJobs(t, `
meta:
  name: x
reports:
  - kind: single
    file: a.csv
    target_ratio: 1.1
    tagret_ratio: 1.2
`)

	_, _, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{
			name:      "no reports",
			cfg:       Config{Meta: Meta{Name: "x"}},
			wantField: "reports",
		},
		{
			name:      "missing name",
			cfg:       Config{Reports: []Job{{Kind: KindSingle, File: "a.csv", TargetRatio: 1}}},
			wantField: "meta.name",
		},
		{
			name:      "unknown kind",
			cfg:       Config{Meta: Meta{Name: "x"}, Reports: []Job{{Kind: "triple"}}},
			wantField: "reports[0].kind",
		},
		{
			name:      "single without file",
			cfg:       Config{Meta: Meta{Name: "x"}, Reports: []Job{{Kind: KindSingle, TargetRatio: 1}}},
			wantField: "reports[0].file",
		},
		{
			name: "sub1 without sell file",
			cfg: Config{Meta: Meta{Name: "x"}, Reports: []Job{
				{Kind: KindSingle, File: "a.csv", TargetRatio: 1},
				{Kind: KindSub1, BuyFile: "b.csv", BuyRatio: 1.1, SellRatio: 1.1},
			}},
			wantField: "reports[1].sell_file",
		},
		{
			name: "negative sell ratio",
			cfg: Config{Meta: Meta{Name: "x"}, Reports: []Job{
				{Kind: KindSub1, BuyFile: "b.csv", SellFile: "s.csv", BuyRatio: 1.1, SellRatio: -0.5},
			}},
			wantField: "reports[0].sell_ratio",
		},
		{
			name:      "negative ratio",
			cfg:       Config{Meta: Meta{Name: "x"}, Reports: []Job{{Kind: KindSingle, File: "a.csv", TargetRatio: -1}}},
			wantField: "reports[0].target_ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			var ve ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := Config{Meta: Meta{Name: "x"}, Reports: []Job{
		{Kind: KindSingle, File: "a.csv", TargetRatio: 1.01},
		{Kind: KindSub1, BuyFile: "b.csv", SellFile: "s.csv", BuyRatio: 1.01, SellRatio: 1.02},
	}}
	assert.NoError(t, Validate(&cfg))
}

func TestLoad_ZeroTargetRatio(t *testing.T) {
	path := writeJobs(t, `
meta:
  name: zero
reports:
  - kind: single
    file: a.csv
    target_ratio: 0
  - kind: sub1
    buy_file: b.csv
    sell_file: s.csv
    buy_ratio: 0
    sell_ratio: 1.2
`)

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Reports[0].TargetRatio)
	assert.Equal(t, 0.0, cfg.Reports[1].BuyRatio)
}

func TestHash(t *testing.T) {
	cfg, _, err := Load(writeJobs(t, sampleYAML))
	require.NoError(t, err)

	hash, err := Hash(cfg)
	require.NoError(t, err)
	assert.Len(t, hash, 64)

	// 동일 설정 → 동일 해시
	hash2, _ := Hash(cfg)
	assert.Equal(t, hash, hash2)

	cfg.Reports[0].TargetRatio = 1.5
	hash3, _ := Hash(cfg)
	assert.NotEqual(t, hash, hash3)
}

func TestWarn(t *testing.T) {
	cfg := &Config{Reports: []Job{
		{Kind: KindSingle, File: "a.csv", TargetRatio: 0.99},
		{Kind: KindSub1, BuyFile: "x.csv", SellFile: "x.csv", BuyRatio: 0.9, SellRatio: 1.05},
		{Kind: KindSingle, File: "b.csv", TargetRatio: 1.01},
	}}

	warnings := Warn(cfg)
	codes := make([]string, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []string{"LOW_TARGET", "SAME_FILE", "LOSING_ROUND_TRIP"}, codes)
}

func TestJobLabel(t *testing.T) {
	assert.Equal(t, "a.csv", Job{Kind: KindSingle, File: "a.csv"}.Label())
	assert.Equal(t, "b.csv / s.csv", Job{Kind: KindSub1, BuyFile: "b.csv", SellFile: "s.csv"}.Label())
}
