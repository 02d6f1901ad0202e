package jobconfig

// Kind selects which report a job runs
type Kind string

const (
	KindSingle Kind = "single"
	KindSub1   Kind = "sub1"
)

// Config is a batch of report jobs read from YAML
type Config struct {
	Meta    Meta  `yaml:"meta" json:"meta"`
	Reports []Job `yaml:"reports" json:"reports" validate:"required,min=1,dive"`
}

// Meta 배치 메타 정보
type Meta struct {
	Name       string `yaml:"name" json:"name" validate:"required"`
	GraphsDir  string `yaml:"graphs_dir" json:"graphs_dir"`   // overrides REPORT_GRAPHS_DIR
	CleanInput *bool  `yaml:"clean_input" json:"clean_input"` // overrides REPORT_CLEAN_INPUT
	XLSX       string `yaml:"xlsx" json:"xlsx"`               // optional summary workbook
}

// Job is one report invocation. Paths are relative to the job file.
type Job struct {
	Kind Kind `yaml:"kind" json:"kind" validate:"required,oneof=single sub1"`

	// single
	File        string  `yaml:"file" json:"file" validate:"required_if=Kind single"`
	TargetRatio float64 `yaml:"target_ratio" json:"target_ratio" validate:"gte=0"` // 0 is a valid target

	// sub1
	BuyFile   string  `yaml:"buy_file" json:"buy_file" validate:"required_if=Kind sub1"`
	SellFile  string  `yaml:"sell_file" json:"sell_file" validate:"required_if=Kind sub1"`
	BuyRatio  float64 `yaml:"buy_ratio" json:"buy_ratio" validate:"gte=0"`
	SellRatio float64 `yaml:"sell_ratio" json:"sell_ratio" validate:"gte=0"`
}

// Label names a job for logs and tables
func (j Job) Label() string {
	if j.Kind == KindSub1 {
		return j.BuyFile + " / " + j.SellFile
	}
	return j.File
}

// CleanInputOr returns the batch override or def
func (m Meta) CleanInputOr(def bool) bool {
	if m.CleanInput == nil {
		return def
	}
	return *m.CleanInput
}
