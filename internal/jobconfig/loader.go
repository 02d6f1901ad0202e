package jobconfig

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a job file, validates it and resolves job paths against the
// file's directory. The raw bytes are returned for auditing.
// 알 수 없는 필드 발견 시 즉시 실패 (KnownFields)
func Load(path string) (*Config, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, data, err
	}

	resolvePaths(&cfg, filepath.Dir(path))

	return &cfg, data, nil
}

// Hash generates SHA256 hash from Config (canonical JSON)
func Hash(cfg *Config) (string, error) {
	jsonBytes, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}

func resolvePaths(cfg *Config, base string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	for i := range cfg.Reports {
		j := &cfg.Reports[i]
		j.File = resolve(j.File)
		j.BuyFile = resolve(j.BuyFile)
		j.SellFile = resolve(j.SellFile)
	}
	cfg.Meta.GraphsDir = resolve(cfg.Meta.GraphsDir)
	cfg.Meta.XLSX = resolve(cfg.Meta.XLSX)
}
